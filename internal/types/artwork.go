package types

type Artwork struct {
  UID            string `gorm:"primaryKey;column:uid" json:"uid"`
  Title          string `gorm:"not null;column:title" json:"title"`
  Description    string `gorm:"type:text;column:description" json:"description"`
  ArtistUID      string `gorm:"not null;column:artist_uid" json:"artist_uid"`
  DateOfAddition string `gorm:"column:date_of_addition" json:"date_of_addition"`
  ThumbnailURL   string `gorm:"column:thumbnail_url" json:"thumbnail_url"`
  Origin         string `gorm:"column:origin" json:"origin"`
}

func (Artwork) TableName() string {
  return "artworks"
}

type Artist struct {
  UID            string `gorm:"primaryKey;column:uid" json:"uid"`
  Artist         string `gorm:"type:text;column:artist" json:"artist"`
  HumanName      string `gorm:"type:text;column:human_name" json:"human_name"`
  DateOfAddition string `gorm:"column:date_of_addition" json:"date_of_addition"`
}

func (Artist) TableName() string {
  return "artists"
}
