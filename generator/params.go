package generator

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/room"
)

// ErrInvalidParams reports an unusable Params value. Validate wraps it with
// the offending field.
var ErrInvalidParams = errors.New("generator: invalid params")

// Minimum accepted dimensions.
const (
	MinMapDim  = 10
	MinRoomDim = 3
)

// Upper bounds. They keep one request within memory and keep every sampled
// range inside int.
const (
	MaxMapDim          = 1024
	MaxRooms           = 4096
	MaxElevationLimit  = 1 << 20
	MaxSmoothingPasses = 10000
)

// Params fully determines one generated level.
type Params struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Rooms       int `json:"rooms"`
	MinRoomSize int `json:"min_room"`
	MaxRoomSize int `json:"max_room"`
	Margin      int `json:"margin"`

	Seed int64 `json:"seed"`

	ChannelWidth int `json:"channel_width"`
	CornerRadius int `json:"corner_radius"`

	Elevation          bool `json:"elevation"`
	MaxElevation       int  `json:"max_elevation"`
	MaxElevationChange int  `json:"max_elevation_change"` // 0 disables
	SmoothingPasses    int  `json:"smoothing_passes"`

	Obstacles       bool    `json:"obstacles"`
	ObstacleDensity float64 `json:"obstacle_density"`
	MinObstacleArea int     `json:"min_obstacle_area"`

	OpenRoomArea int `json:"open_room_area"` // 0 disables open rooms

	Trend *room.Trend `json:"trend,omitempty"`
	Start *grid.Point `json:"start,omitempty"`
}

// DefaultParams returns an 80×25 level with 12 rooms of side 4..10, two-cell
// channels with radius-2 corners, elevation and obstacles switched off.
func DefaultParams() Params {
	return Params{
		Width:           80,
		Height:          25,
		Rooms:           12,
		MinRoomSize:     4,
		MaxRoomSize:     10,
		Margin:          1,
		ChannelWidth:    2,
		CornerRadius:    2,
		MaxElevation:    2,
		SmoothingPasses: 50,
		ObstacleDensity: 0.3,
		MinObstacleArea: 16,
		OpenRoomArea:    64,
	}
}

// Validate checks every field and returns the first violation wrapped in
// ErrInvalidParams.
func (p Params) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParams}, args...)...)
	}
	switch {
	case p.Width < MinMapDim || p.Height < MinMapDim:
		return bad("map %dx%d smaller than %dx%d", p.Width, p.Height, MinMapDim, MinMapDim)
	case p.Width > MaxMapDim || p.Height > MaxMapDim:
		return bad("map %dx%d larger than %dx%d", p.Width, p.Height, MaxMapDim, MaxMapDim)
	case p.Rooms < 0 || p.Rooms > MaxRooms:
		return bad("rooms %d outside [0,%d]", p.Rooms, MaxRooms)
	case p.MinRoomSize < MinRoomDim:
		return bad("min_room %d < %d", p.MinRoomSize, MinRoomDim)
	case p.MinRoomSize > p.MaxRoomSize:
		return bad("min_room %d > max_room %d", p.MinRoomSize, p.MaxRoomSize)
	case p.MaxRoomSize > MaxMapDim:
		return bad("max_room %d > %d", p.MaxRoomSize, MaxMapDim)
	case p.Margin < 0 || p.Margin > MaxMapDim:
		return bad("margin %d outside [0,%d]", p.Margin, MaxMapDim)
	case p.ChannelWidth < 1 || p.ChannelWidth > MaxMapDim:
		return bad("channel_width %d outside [1,%d]", p.ChannelWidth, MaxMapDim)
	case p.CornerRadius < 0 || p.CornerRadius > MaxMapDim:
		return bad("corner_radius %d outside [0,%d]", p.CornerRadius, MaxMapDim)
	case p.MaxElevation < 0 || p.MaxElevation > MaxElevationLimit:
		return bad("max_elevation %d outside [0,%d]", p.MaxElevation, MaxElevationLimit)
	case p.MaxElevationChange < 0 || p.MaxElevationChange > 2*MaxElevationLimit:
		return bad("max_elevation_change %d outside [0,%d]", p.MaxElevationChange, 2*MaxElevationLimit)
	case p.SmoothingPasses < 1 || p.SmoothingPasses > MaxSmoothingPasses:
		return bad("smoothing_passes %d outside [1,%d]", p.SmoothingPasses, MaxSmoothingPasses)
	case !unit(p.ObstacleDensity):
		return bad("obstacle_density %v outside [0,1]", p.ObstacleDensity)
	case p.MinObstacleArea < 0:
		return bad("min_obstacle_area %d < 0", p.MinObstacleArea)
	case p.OpenRoomArea < 0:
		return bad("open_room_area %d < 0", p.OpenRoomArea)
	case p.Trend != nil && !unit(p.Trend.Strength):
		return bad("trend strength %v outside [0,1]", p.Trend.Strength)
	case p.Start != nil && (p.Start.X < 0 || p.Start.X >= p.Width || p.Start.Y < 0 || p.Start.Y >= p.Height):
		return bad("start %v outside %dx%d", *p.Start, p.Width, p.Height)
	}
	return nil
}

func unit(v float64) bool { return !math.IsNaN(v) && v >= 0 && v <= 1 }

// roomConfig projects the placement inputs.
func (p Params) roomConfig() room.Config {
	return room.Config{
		Width:              p.Width,
		Height:             p.Height,
		Count:              p.Rooms,
		MinSize:            p.MinRoomSize,
		MaxSize:            p.MaxRoomSize,
		Margin:             p.Margin,
		Elevation:          p.Elevation,
		MaxElevation:       p.MaxElevation,
		MaxElevationChange: p.MaxElevationChange,
		OpenArea:           p.OpenRoomArea,
		Trend:              p.Trend,
		Start:              p.Start,
	}
}
