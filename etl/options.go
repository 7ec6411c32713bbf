// SPDX-License-Identifier: MIT

package etl

import "github.com/rs/zerolog"

// Column names in the source file.
const (
	ColumnDate   = "Date"
	ColumnPrice  = "AveragePrice"
	ColumnType   = "type"
	ColumnRegion = "region"
)

// DateLayout is the layout of the Date column.
const DateLayout = "2006-01-02"

// DefaultType is the avocado type kept by default.
const DefaultType = "conventional"

// NonCities lists the aggregate regions of the dataset that are not markets.
var NonCities = []string{
	"California",
	"GreatLakes",
	"Midsouth",
	"Northeast",
	"Plains",
	"SouthCentral",
	"Southeast",
	"TotalUS",
	"West",
}

// Options controls filtering.
type Options struct {
	// Type is the value the type column must equal. Empty keeps every type.
	Type string

	// Exclude lists regions to drop.
	Exclude []string

	// Log receives stage diagnostics. The zero value disables logging.
	Log *zerolog.Logger
}

// DefaultOptions keeps conventional avocados in city regions.
func DefaultOptions() Options {
	return Options{
		Type:    DefaultType,
		Exclude: append([]string(nil), NonCities...),
	}
}

func (o Options) logger() zerolog.Logger {
	if o.Log == nil {
		return zerolog.Nop()
	}

	return *o.Log
}
