package geom

import (
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Size is a requested box dimension.
type Size struct {
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Sz is a convenience constructor for Size.
func Sz(width, height int) Size { return Size{Width: width, Height: height} }

// Validate rejects negative dimensions with ErrCodeInvalidArgument.
func (s Size) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return errors.New(errors.ErrCodeInvalidArgument,
			"size must not be negative: width=%d height=%d", s.Width, s.Height)
	}
	return nil
}

// Area returns Width*Height.
func (s Size) Area() int { return s.Width * s.Height }

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool { return s.Width == 0 || s.Height == 0 }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }
