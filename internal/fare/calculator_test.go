package fare

import (
	"testing"

	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPriceTable() PriceTable {
	sedan := models.VehicleClass{
		Name:                   "Standard Sedan",
		PassengerCapacity:      3,
		LuggageCapacity:        3,
		BasePrice:              400,
		ClassSurcharge:         0,
		SeatRearFacingPrice:    120,
		SeatForwardFacingPrice: 120,
		SeatBoosterPrice:       100,
		SignboardPrice:         150,
	}
	sedan.ID = 1

	van := models.VehicleClass{
		Name:                   "Minivan",
		PassengerCapacity:      7,
		LuggageCapacity:        7,
		BasePrice:              550,
		ClassSurcharge:         150,
		SeatRearFacingPrice:    100,
		SeatForwardFacingPrice: 100,
		SeatBoosterPrice:       80,
		SignboardPrice:         150,
	}
	van.ID = 2

	return NewPriceTable([]models.VehicleClass{sedan, van})
}

func TestCalculateStandardSedanWithBoosterAndSignboard(t *testing.T) {
	config := TripConfiguration{
		VehicleClassID: 1,
		Adults:         1,
		Children:       1,
		BoosterSeats:   1,
		Signboard:      true,
	}

	breakdown, err := Calculate(config, testPriceTable())
	require.NoError(t, err)

	assert.Equal(t, int64(400), breakdown.BaseFare)
	assert.Equal(t, int64(0), breakdown.ClassSurcharge)
	assert.Equal(t, int64(100), breakdown.ChildSeatSurcharge)
	assert.Equal(t, int64(150), breakdown.SignboardSurcharge)
	assert.Equal(t, int64(0), breakdown.Discount)
	assert.Equal(t, int64(650), breakdown.Total)
}

func TestCalculateTotalIsSumOfLineItems(t *testing.T) {
	config := TripConfiguration{
		VehicleClassID:     2,
		Adults:             2,
		Children:           2,
		RearFacingSeats:    1,
		ForwardFacingSeats: 1,
		BoosterSeats:       1,
		CheckedBags:        3,
		Signboard:          true,
	}

	breakdown, err := Calculate(config, testPriceTable())
	require.NoError(t, err)

	sum := breakdown.BaseFare +
		breakdown.ClassSurcharge +
		breakdown.ChildSeatSurcharge +
		breakdown.SignboardSurcharge +
		breakdown.NightSurcharge +
		breakdown.HolidaySurcharge +
		breakdown.RemoteAreaSurcharge +
		breakdown.MultiStopSurcharge -
		breakdown.Discount
	assert.Equal(t, sum, breakdown.Total)
	assert.GreaterOrEqual(t, breakdown.Total, int64(0))
}

func TestCalculatePlaceholderSurchargesStayZero(t *testing.T) {
	breakdown, err := Calculate(TripConfiguration{VehicleClassID: 1, Adults: 1}, testPriceTable())
	require.NoError(t, err)

	assert.Zero(t, breakdown.NightSurcharge)
	assert.Zero(t, breakdown.HolidaySurcharge)
	assert.Zero(t, breakdown.RemoteAreaSurcharge)
	assert.Zero(t, breakdown.MultiStopSurcharge)
	assert.Zero(t, breakdown.Discount)
}

func TestCalculateUnknownVehicleClass(t *testing.T) {
	breakdown, err := Calculate(TripConfiguration{VehicleClassID: 99, Adults: 1}, testPriceTable())

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, uint(99), confErr.VehicleClassID)
	assert.Equal(t, PriceBreakdown{}, breakdown)
}

func TestCalculatePassengerCapacityExceeded(t *testing.T) {
	config := TripConfiguration{
		VehicleClassID: 1,
		Adults:         3,
		Children:       1, // 4 passengers in a 3-seat sedan
	}

	_, err := Calculate(config, testPriceTable())

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestCalculateLuggageCapacityExceeded(t *testing.T) {
	config := TripConfiguration{
		VehicleClassID: 1,
		Adults:         1,
		CabinBags:      2,
		CheckedBags:    2,
	}

	_, err := Calculate(config, testPriceTable())

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestCalculateRequiresAnAdult(t *testing.T) {
	_, err := Calculate(TripConfiguration{VehicleClassID: 1, Children: 2}, testPriceTable())

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestCalculateIsDeterministic(t *testing.T) {
	config := TripConfiguration{
		VehicleClassID:  1,
		Adults:          2,
		Children:        1,
		RearFacingSeats: 1,
		Signboard:       true,
		SignboardText:   "Mr. Tanaka",
	}
	table := testPriceTable()

	first, err := Calculate(config, table)
	require.NoError(t, err)
	second, err := Calculate(config, table)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
