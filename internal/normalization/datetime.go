package normalization

import (
  "encoding/json"
  "fmt"
  "strings"
  "time"
)

// DateTimeLayout is the canonical relational DATETIME shape, always 19
// characters, whole seconds, no timezone marker.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime converts a document-store submission timestamp into the canonical
// DATETIME string. The input is either epoch millis (decoded from JSON as a
// number) or an ISO-8601 string; a string already in the canonical shape
// passes through. Sub-second precision and timezone offsets are discarded,
// never converted, so the result reads as the timestamp was given.
func DateTime(v any) (string, error) {
  switch t := v.(type) {
  case string:
    return dateTimeFromString(t)
  case float64:
    return dateTimeFromMillis(int64(t)), nil
  case int64:
    return dateTimeFromMillis(t), nil
  case int:
    return dateTimeFromMillis(int64(t)), nil
  case json.Number:
    millis, err := t.Int64()
    if err != nil {
      return "", fmt.Errorf("timestamp %q is not epoch millis: %w", t.String(), err)
    }
    return dateTimeFromMillis(millis), nil
  case nil:
    return "", fmt.Errorf("timestamp is missing")
  default:
    return "", fmt.Errorf("unsupported timestamp type %T", v)
  }
}

func dateTimeFromMillis(millis int64) string {
  return time.UnixMilli(millis).UTC().Format(DateTimeLayout)
}

func dateTimeFromString(s string) (string, error) {
  s = strings.TrimSpace(s)
  s = strings.Replace(s, "T", " ", 1)
  if len(s) < len(DateTimeLayout) {
    return "", fmt.Errorf("timestamp %q too short for %s", s, DateTimeLayout)
  }
  s = s[:len(DateTimeLayout)]
  if _, err := time.Parse(DateTimeLayout, s); err != nil {
    return "", fmt.Errorf("malformed timestamp %q: %w", s, err)
  }
  return s, nil
}

// Now renders the current time in the canonical shape. Artist rows use it for
// their date_of_addition.
func Now() string {
  return time.Now().UTC().Format(DateTimeLayout)
}
