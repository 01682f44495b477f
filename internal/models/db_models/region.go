package db_models

type Region struct {
	BaseModel
	Key         string `gorm:"uniqueIndex;not null"` // e.g. "kansai"
	Label       string
	DefaultDays int    `gorm:"default:5"`
	Spots       []Spot `gorm:"foreignKey:RegionID"`
}
