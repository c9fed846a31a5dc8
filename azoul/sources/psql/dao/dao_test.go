package dao

import (
	"context"
	"regexp"
	"testing"
	"time"

	"azoul/azoul/sources/psql"
	"azoul/azoul/sources/psql/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := psql.Open(context.Background(), sqlite.Open(dsn))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db.DB
}

func TestCRUDLifecycle(t *testing.T) {
	ctx := context.Background()
	tours := NewCRUD[models.Tour](newTestDB(t))

	tour := &models.Tour{Title: "Three days in the Sahara", DurationDays: 3, PriceMAD: 2500}
	require.NoError(t, tours.Create(ctx, tour))
	require.NotEmpty(t, tour.ID)
	_, err := uuid.Parse(tour.ID)
	require.NoError(t, err)

	got, err := tours.Get(ctx, tour.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Three days in the Sahara", got.Title)

	updated, err := tours.Update(ctx, tour.ID, &models.Tour{PriceMAD: 2200})
	require.NoError(t, err)
	assert.Equal(t, 2200.0, updated.PriceMAD)
	assert.Equal(t, "Three days in the Sahara", updated.Title, "zero fields are left alone")

	list, err := tours.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	n, err := tours.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, tours.Delete(ctx, tour.ID))
	got, err = tours.Get(ctx, tour.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCRUDMissingRows(t *testing.T) {
	ctx := context.Background()
	courses := NewCRUD[models.Course](newTestDB(t))

	_, err := courses.Update(ctx, "missing", &models.Course{Title: "Darija for travellers"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, courses.Delete(ctx, "missing"), ErrNotFound)

	list, err := courses.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCRUDListPaging(t *testing.T) {
	ctx := context.Background()
	guides := NewCRUD[models.Guide](newTestDB(t))
	for _, name := range []string{"Youssef", "Fatima", "Hassan"} {
		require.NoError(t, guides.Create(ctx, &models.Guide{FullName: name}))
	}

	page, err := guides.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := guides.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestDestinationBySlug(t *testing.T) {
	ctx := context.Background()
	destinations := NewDestinationDAO(newTestDB(t))

	d := &models.Destination{Name: "Chefchaouen"}
	require.NoError(t, d.Validate())
	created, err := destinations.Upsert(ctx, d)
	require.NoError(t, err)
	assert.True(t, created)

	again := &models.Destination{Name: "Chefchaouen", Slug: "chefchaouen", Region: "Rif"}
	created, err = destinations.Upsert(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, d.ID, again.ID)

	got, err := destinations.GetBySlug(ctx, "chefchaouen")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, d.ID, got.ID)

	missing, err := destinations.GetBySlug(ctx, "atlantis")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	subscribers := NewSubscriberDAO(newTestDB(t))

	first, created, err := subscribers.Subscribe(ctx, " Traveller@Example.com", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "traveller@example.com", first.Email)
	assert.Equal(t, "en", first.Language)

	second, created, err := subscribers.Subscribe(ctx, "traveller@example.COM", "fr")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	n, err := subscribers.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, _, err = subscribers.Subscribe(ctx, "not-an-email", "en")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSubscriberActiveFlagPersists(t *testing.T) {
	ctx := context.Background()
	subscribers := NewSubscriberDAO(newTestDB(t))

	paused := &models.Subscriber{Email: "paused@example.com", Language: "fr"}
	require.NoError(t, subscribers.Create(ctx, paused))
	got, err := subscribers.Get(ctx, paused.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)

	sub, _, err := subscribers.Subscribe(ctx, "reader@example.com", "en")
	require.NoError(t, err)
	require.True(t, sub.Active)

	sub.Active = false
	replaced, err := subscribers.Replace(ctx, sub.ID, sub)
	require.NoError(t, err)
	assert.False(t, replaced.Active)
	assert.Equal(t, sub.ID, replaced.ID)
	assert.Equal(t, "reader@example.com", replaced.Email)
	assert.Equal(t, sub.CreatedAt.Unix(), replaced.CreatedAt.Unix())

	again, created, err := subscribers.Subscribe(ctx, "reader@example.com", "en")
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, again.Active)

	_, err = subscribers.Replace(ctx, "missing", sub)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingsByTour(t *testing.T) {
	ctx := context.Background()
	bookings := NewBookingDAO(newTestDB(t))
	day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	for i, tourID := range []string{"tour-a", "tour-b", "tour-a"} {
		b := &models.Booking{
			TourID: tourID, FullName: "Guest", Email: "guest@example.com",
			Guests: 1, TravelDate: day.AddDate(0, 0, -i),
		}
		require.NoError(t, b.Validate())
		require.NoError(t, bookings.Create(ctx, b))
	}

	list, err := bookings.ListByTour(ctx, "tour-a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].TravelDate.Before(list[1].TravelDate))
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestDeleteQueryShape(t *testing.T) {
	db, mock := newMockDB(t)
	media := NewCRUD[models.Media](db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "media" WHERE id = $1`)).
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "media" WHERE id = $1`)).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, media.Delete(context.Background(), "abc"))
	assert.ErrorIs(t, media.Delete(context.Background(), "gone"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
