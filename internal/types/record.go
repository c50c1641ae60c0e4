package types

// ArtworkRecord is the document-store snapshot of an artwork as the
// artist-facing portal writes it. This pipeline only ever reads it,
// except for the sql flag which the sync marker flips after a commit.

type RecordStatus string

const (
  StatusPending  RecordStatus = "Pending"
  StatusApproved RecordStatus = "Approved"
  StatusHeld     RecordStatus = "Held"
  StatusDeclined RecordStatus = "Declined"
)

type W3CColor struct {
  Hex  string `json:"hex"`
  Name string `json:"name"`
}

type RecordColor struct {
  Hex     string   `json:"hex"`
  Density float64  `json:"density"`
  W3C     W3CColor `json:"w3c"`
}

type RecordTag struct {
  ID   int    `json:"id"`
  Text string `json:"text"`
}

type ArtworkRecord struct {
  ArtworkUID  string        `json:"artwork_uid"`
  ArtistUID   string        `json:"artist_uid"`
  ArtworkName string        `json:"artwork_name"`
  ArtistName  string        `json:"artist_name"`
  Description string        `json:"description,omitempty"`
  Status      RecordStatus  `json:"status,omitempty"`
  // Submitted is either epoch millis (json number) or an ISO-8601 string.
  Submitted   any           `json:"submitted,omitempty"`
  Colors      []RecordColor `json:"colors,omitempty"`
  Tags        []RecordTag   `json:"tags,omitempty"`
  SQL         bool          `json:"sql,omitempty"`
}
