package models

// Relator é o responsável por avaliar o requerimento.
type Relator struct {
	ID   int64  `gorm:"column:rel_id;primary_key;AUTO_INCREMENT" json:"id"`
	Nome string `gorm:"column:rel_nome;not null" json:"nome"`
}

func (Relator) TableName() string {
	return "rel_relator"
}
