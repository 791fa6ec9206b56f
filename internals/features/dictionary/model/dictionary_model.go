package model

import (
	"time"

	"github.com/google/uuid"
)

// DictionaryEntryModel satu istilah kamus HP. Seluruh isi tabel diganti utuh
// setiap kali admin meregenerate, tidak ada edit per-baris.
type DictionaryEntryModel struct {
	DictionaryEntryID         uuid.UUID `gorm:"column:dictionary_entry_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"dictionary_entry_id"`
	DictionaryEntryTerm       string    `gorm:"column:dictionary_entry_term;type:varchar(120);not null" json:"dictionary_entry_term"`
	DictionaryEntryDefinition string    `gorm:"column:dictionary_entry_definition;type:text;not null" json:"dictionary_entry_definition"`
	DictionaryEntryCategory   string    `gorm:"column:dictionary_entry_category;type:varchar(60)" json:"dictionary_entry_category"`
	DictionaryEntryCreatedAt  time.Time `gorm:"column:dictionary_entry_created_at;autoCreateTime" json:"dictionary_entry_created_at"`
}

func (DictionaryEntryModel) TableName() string {
	return "dictionary_entries"
}
