package types

import (
	"strconv"
	"strings"
	"time"
)

// QuarantineInfo is the parsed download-quarantine marker.
//
// The raw attribute value is `flags;timestamp;agent;origin` where timestamp
// counts seconds from the 2001-01-01 reference epoch, not the Unix epoch.
// Any field beyond the first may be absent; missing components simply stay
// at their zero values.
type QuarantineInfo struct {
	Flags          string
	Timestamp      time.Time
	AgentName      string
	DownloadedFrom string
}

// referenceEpoch is 2001-01-01T00:00:00Z, the zero point of quarantine
// timestamps.
var referenceEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseQuarantine parses a raw quarantine attribute string.
//
// Returns nil only for an empty input; otherwise every component that is
// present and well-formed is filled in.
func ParseQuarantine(raw string) *QuarantineInfo {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ";")
	info := &QuarantineInfo{}

	if len(parts) > 0 {
		info.Flags = parts[0]
	}
	if len(parts) > 1 {
		if secs, err := strconv.ParseFloat(parts[1], 64); err == nil {
			info.Timestamp = referenceEpoch.Add(time.Duration(secs * float64(time.Second)))
		}
	}
	if len(parts) > 2 {
		info.AgentName = parts[2]
	}
	if len(parts) > 3 {
		info.DownloadedFrom = parts[3]
	}

	return info
}
