package labels

import (
  "strconv"
  "github.com/google/uuid"
  "github.com/yungbote/curator-sync/internal/types"
)

// LabelOrigin is the provenance tag carried on every derived label. The
// colors and tags on a record come out of the Clarifai analysis the portal
// runs at upload time.
const LabelOrigin = "Clarif.ai"

// Extract derives the label set for one artwork record: per color entry a
// density label ("<hex> <density>") and a w3c nearest-named-color label, per
// tag entry a text label. Absent colors or tags simply contribute nothing.
// Each call mints fresh uids, so extraction is deterministic in content but
// not in identity.
func Extract(record types.ArtworkRecord) []types.Label {
  labels := []types.Label{}
  for _, color := range record.Colors {
    labels = append(labels, types.Label{
      UID:       uuid.NewString(),
      Val:       color.Hex + " " + strconv.FormatFloat(color.Density, 'f', -1, 64),
      LabelType: types.LabelTypeColorDensity,
      Origin:    LabelOrigin,
    })
    labels = append(labels, types.Label{
      UID:       uuid.NewString(),
      Val:       color.W3C.Hex,
      LabelType: types.LabelTypeW3CColorDensity,
      Origin:    LabelOrigin,
    })
  }
  for _, tag := range record.Tags {
    labels = append(labels, types.Label{
      UID:       uuid.NewString(),
      Val:       tag.Text,
      LabelType: types.LabelTypeTextTag,
      Origin:    LabelOrigin,
    })
  }
  return labels
}
