package types

const (
  LabelTypeColorDensity    = "clarifai-color-density"
  LabelTypeW3CColorDensity = "clarifai-w3c-color-density"
  LabelTypeTextTag         = "clarifai-text-tag"
)

// ObjectTableArtworks is the only association target this pipeline writes.
const ObjectTableArtworks = "artworks"

type Label struct {
  UID       string `gorm:"primaryKey;column:uid" json:"uid"`
  Val       string `gorm:"not null;column:val" json:"val"`
  LabelType string `gorm:"not null;column:labeltype" json:"labeltype"`
  Origin    string `gorm:"column:origin" json:"origin"`
}

func (Label) TableName() string {
  return "labels"
}

type Association struct {
  LabelUID    string `gorm:"primaryKey;column:label_uid" json:"label_uid"`
  ObjectUID   string `gorm:"not null;column:object_uid" json:"object_uid"`
  ObjectTable string `gorm:"not null;column:object_table" json:"object_table"`
}

func (Association) TableName() string {
  return "associations"
}
