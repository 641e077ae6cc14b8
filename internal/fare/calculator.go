// Package fare prices a trip against the vehicle-class price table.
// Calculation is pure: the same configuration and table always produce
// the same breakdown, and nothing is written anywhere.
package fare

import (
	"fmt"

	"github.com/MRsugoii/skycar-system-sub001/internal/models"
)

// TripConfiguration captures everything the passenger selected at booking
// time. It is immutable once priced; the order stores a copy of the result.
type TripConfiguration struct {
	VehicleClassID     uint   `json:"vehicleClassId"`
	Adults             int    `json:"adults"`
	Children           int    `json:"children"`
	RearFacingSeats    int    `json:"rearFacingSeats"`
	ForwardFacingSeats int    `json:"forwardFacingSeats"`
	BoosterSeats       int    `json:"boosterSeats"`
	CabinBags          int    `json:"cabinBags"`
	CheckedBags        int    `json:"checkedBags"`
	OversizedBags      int    `json:"oversizedBags"`
	Signboard          bool   `json:"signboard"`
	SignboardText      string `json:"signboardText"`
	Notes              string `json:"notes"`
}

// PriceBreakdown itemizes a quote. Amounts are integer currency units.
// Night, holiday, remote-area and multi-stop surcharges are defined but
// always zero for now; the fields are placeholders, not dead weight.
type PriceBreakdown struct {
	BaseFare            int64 `json:"baseFare"`
	ClassSurcharge      int64 `json:"classSurcharge"`
	ChildSeatSurcharge  int64 `json:"childSeatSurcharge"`
	SignboardSurcharge  int64 `json:"signboardSurcharge"`
	NightSurcharge      int64 `json:"nightSurcharge"`
	HolidaySurcharge    int64 `json:"holidaySurcharge"`
	RemoteAreaSurcharge int64 `json:"remoteAreaSurcharge"`
	MultiStopSurcharge  int64 `json:"multiStopSurcharge"`
	Discount            int64 `json:"discount"`
	Total               int64 `json:"total"`
}

// PriceTable maps vehicle-class ids to their surcharge schedules.
type PriceTable map[uint]models.VehicleClass

// NewPriceTable builds a lookup table from vehicle-class rows.
func NewPriceTable(classes []models.VehicleClass) PriceTable {
	table := make(PriceTable, len(classes))
	for _, class := range classes {
		table[class.ID] = class
	}
	return table
}

// ConfigurationError reports a trip configuration referencing an unknown
// vehicle class.
type ConfigurationError struct {
	VehicleClassID uint
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown vehicle class id %d", e.VehicleClassID)
}

// ValidationError reports a trip configuration the selected class cannot carry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Calculate prices a trip configuration against the table.
//
// Total = base + class surcharge + child-seat surcharge + signboard
// surcharge + placeholder surcharges − discount. Discount is always zero
// (coupon entry is UI-only), so the total can never go negative.
func Calculate(config TripConfiguration, table PriceTable) (PriceBreakdown, error) {
	class, ok := table[config.VehicleClassID]
	if !ok {
		return PriceBreakdown{}, &ConfigurationError{VehicleClassID: config.VehicleClassID}
	}

	if config.Adults < 1 {
		return PriceBreakdown{}, &ValidationError{Reason: "at least one adult passenger is required"}
	}
	if passengers := config.Adults + config.Children; passengers > class.PassengerCapacity {
		return PriceBreakdown{}, &ValidationError{
			Reason: fmt.Sprintf("%d passengers exceed %s capacity of %d", passengers, class.Name, class.PassengerCapacity),
		}
	}
	if bags := config.CabinBags + config.CheckedBags + config.OversizedBags; bags > class.LuggageCapacity {
		return PriceBreakdown{}, &ValidationError{
			Reason: fmt.Sprintf("%d bags exceed %s luggage capacity of %d", bags, class.Name, class.LuggageCapacity),
		}
	}

	seatSurcharge := int64(config.RearFacingSeats)*class.SeatRearFacingPrice +
		int64(config.ForwardFacingSeats)*class.SeatForwardFacingPrice +
		int64(config.BoosterSeats)*class.SeatBoosterPrice

	var signboardSurcharge int64
	if config.Signboard {
		signboardSurcharge = class.SignboardPrice
	}

	breakdown := PriceBreakdown{
		BaseFare:           class.BasePrice,
		ClassSurcharge:     class.ClassSurcharge,
		ChildSeatSurcharge: seatSurcharge,
		SignboardSurcharge: signboardSurcharge,
		// Night, holiday, remote-area and multi-stop pricing is not
		// defined yet; the lines stay at zero.
		Discount: 0,
	}
	breakdown.Total = breakdown.BaseFare +
		breakdown.ClassSurcharge +
		breakdown.ChildSeatSurcharge +
		breakdown.SignboardSurcharge +
		breakdown.NightSurcharge +
		breakdown.HolidaySurcharge +
		breakdown.RemoteAreaSurcharge +
		breakdown.MultiStopSurcharge -
		breakdown.Discount

	return breakdown, nil
}
