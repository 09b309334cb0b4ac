package icon

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnavailable is returned by a Painter that cannot draw on this host.
// Ensure treats it as a skip rather than a failure.
var ErrUnavailable = errors.New("icon generation unavailable")

// Status reports what Ensure did.
type Status int

const (
	StatusExisting Status = iota
	StatusCreated
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusSkipped:
		return "skipped"
	default:
		return "existing"
	}
}

// Painter renders an icon image to w.
type Painter interface {
	Paint(w io.Writer) error
}

// Ensure creates an icon at path using p unless a file already exists there.
// A nil Painter, or one returning ErrUnavailable, yields StatusSkipped.
func Ensure(path string, p Painter) (Status, error) {
	if _, err := os.Stat(path); err == nil {
		return StatusExisting, nil
	} else if !os.IsNotExist(err) {
		return StatusSkipped, fmt.Errorf("checking icon %s: %w", path, err)
	}

	if p == nil {
		return StatusSkipped, nil
	}

	var buf bytes.Buffer
	if err := p.Paint(&buf); err != nil {
		if errors.Is(err, ErrUnavailable) {
			return StatusSkipped, nil
		}
		return StatusSkipped, fmt.Errorf("drawing icon: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return StatusSkipped, fmt.Errorf("writing icon %s: %w", path, err)
	}
	return StatusCreated, nil
}
