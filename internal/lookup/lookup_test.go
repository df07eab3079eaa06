package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/oddsframe/internal/utils"
)

func TestEnumerationSizes(t *testing.T) {
	assert.Len(t, Bookmakers(), 55)
	assert.Len(t, Markets(), 8)
	assert.Len(t, OddsTimes(), 2)
	assert.Len(t, StatusCodes(), 6)
	assert.Len(t, Countries(), 139)
}

func TestAccessorsReturnCopies(t *testing.T) {
	b := Bookmakers()
	b[0] = "mutated"
	assert.NotEqual(t, "mutated", Bookmakers()[0])
}

func TestBookmakerPrefix(t *testing.T) {
	tests := []struct {
		column string
		want   string
		ok     bool
	}{
		{"bet365_1x2_home_open", "bet365", true},
		{"bet365.it_1x2_home_open", "bet365.it", true},
		{"Betfair Exchange_OU_over_2.5_closed", "Betfair Exchange", true},
		{"Betfair_OU_over_2.5_closed", "Betfair", true},
		{"William Hill_1x2_draw_open_active", "William Hill", true},
		{"bet365", "", false},
		{"xbet365_1x2_home_open", "", false},
		{"home_team_sofascore", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got, ok := BookmakerPrefix(tt.column)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateBookmakers(t *testing.T) {
	assert.NoError(t, ValidateBookmakers(nil))
	assert.NoError(t, ValidateBookmakers([]string{"bet365", "Pinnacle", "N1 Bet"}))

	err := ValidateBookmakers([]string{"bet365", "bet366"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidValue))

	var ve *utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "bet366", ve.Value)
	assert.Equal(t, "bookmaker", ve.Field)
	assert.Len(t, ve.Allowed, 55)
}

func TestValidateMarkets(t *testing.T) {
	assert.NoError(t, ValidateMarkets([]string{"1x2", "OU", "AH"}))
	// codes are case sensitive
	assert.ErrorIs(t, ValidateMarkets([]string{"ou"}), utils.ErrInvalidValue)
}

func TestValidateOddsTimes(t *testing.T) {
	assert.NoError(t, ValidateOddsTimes([]string{"open"}))
	assert.NoError(t, ValidateOddsTimes([]string{"open", "closed"}))
	assert.ErrorIs(t, ValidateOddsTimes([]string{"opening"}), utils.ErrInvalidValue)
}

func TestValidateStatusCodes(t *testing.T) {
	assert.NoError(t, ValidateStatusCodes([]int{60, 70, 80, 100, 110, 120}))

	for _, code := range []int{0, 59, 90, 101, 999, -100} {
		err := ValidateStatusCodes([]int{100, code})
		assert.ErrorIs(t, err, utils.ErrInvalidValue, "code %d", code)
	}

	err := ValidateStatusCodes([]int{999})
	assert.Equal(t, "invalid status: '999'. Allowed values are [60, 70, 80, 100, 110, 120]", err.Error())
}

func TestStatusCode_Description(t *testing.T) {
	assert.Equal(t, "Ended", StatusEnded.Description())
	assert.Equal(t, "AP", StatusAP.Description())
	assert.Equal(t, "Unknown", StatusCode(1).Description())
}

func TestIsCountry(t *testing.T) {
	assert.True(t, IsCountry("Brazil"))
	assert.True(t, IsCountry("  Brazil "))
	assert.True(t, IsCountry("North & Central America"))
	assert.False(t, IsCountry("Atlantis"))
}

func TestNormalizeName(t *testing.T) {
	decomposed := "Cura\u0063\u0327ao"
	precomposed := "Cura\u00e7ao"
	assert.NotEqual(t, decomposed, precomposed)
	assert.Equal(t, NormalizeName(decomposed), NormalizeName(precomposed))
}
