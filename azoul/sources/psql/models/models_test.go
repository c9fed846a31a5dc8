package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "chefchaouen-the-blue-city", Slugify("  Chefchaouen: the Blue City! "))
	assert.Equal(t, "fes-el-bali", Slugify("Fès el Bali"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestDestinationValidate(t *testing.T) {
	d := &Destination{Name: "Merzouga Dunes"}
	require.NoError(t, d.Validate())
	assert.Equal(t, "merzouga-dunes", d.Slug)

	err := (&Destination{}).Validate()
	assert.ErrorIs(t, err, ErrValidation)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
}

func TestBookingValidate(t *testing.T) {
	b := &Booking{TourID: "t1", FullName: "Amina", Email: " Amina@Example.com ", Guests: 2}
	require.NoError(t, b.Validate())
	assert.Equal(t, "amina@example.com", b.Email)
	assert.Equal(t, BookingPending, b.Status)

	b = &Booking{TourID: "t1", FullName: "Amina", Email: "amina@example.com", Guests: 0}
	assert.ErrorIs(t, b.Validate(), ErrValidation)

	b = &Booking{TourID: "t1", FullName: "Amina", Email: "not-an-email", Guests: 1}
	assert.ErrorIs(t, b.Validate(), ErrValidation)

	b = &Booking{TourID: "t1", FullName: "Amina", Email: "a@b.ma", Guests: 1, Status: "lost"}
	assert.ErrorIs(t, b.Validate(), ErrValidation)
}

func TestOtherValidators(t *testing.T) {
	assert.Error(t, (&Feature{}).Validate())
	assert.Error(t, (&Tour{Title: "Desert", PriceMAD: -1}).Validate())
	assert.Error(t, (&Accommodation{Name: "Riad", Rating: 6}).Validate())
	assert.Error(t, (&Course{}).Validate())
	assert.Error(t, (&Guide{FullName: "Youssef", Email: "nope"}).Validate())
	assert.Error(t, (&Subscriber{Email: ""}).Validate())
	assert.Error(t, (&UserProfile{FullName: "Sara"}).Validate())
	assert.Error(t, (&Media{}).Validate())

	s := &Subscriber{Email: "NEWS@Azoul.MA"}
	require.NoError(t, s.Validate())
	assert.Equal(t, "news@azoul.ma", s.Email)
}
