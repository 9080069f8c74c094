package recordstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Code  string   `gorm:"column:code;primaryKey" dynamodbav:"code"`
	Name  string   `gorm:"column:name" dynamodbav:"name"`
	Color string   `gorm:"column:color" dynamodbav:"color"`
	Price *float64 `gorm:"column:price" dynamodbav:"price"`
}

func (widget) TableName() string { return "widgets" }

func ptr(v float64) *float64 { return &v }

// runTableContract checks behaviour every backend must share.
func runTableContract(t *testing.T, newTable func(t *testing.T) Table[widget]) {
	ctx := context.Background()

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		table := newTable(t)

		_, err := table.Get(ctx, "W-404")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.Put(ctx, &widget{Code: "W-1", Name: "Bolt", Color: "red", Price: ptr(2.5)}))

		got, err := table.Get(ctx, "W-1")
		require.NoError(t, err)
		assert.Equal(t, "Bolt", got.Name)
		require.NotNil(t, got.Price)
		assert.InDelta(t, 2.5, *got.Price, 1e-9)
	})

	t.Run("put replaces existing item", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.Put(ctx, &widget{Code: "W-1", Name: "Bolt", Color: "red"}))
		require.NoError(t, table.Put(ctx, &widget{Code: "W-1", Name: "Nut", Color: "blue"}))

		got, err := table.Get(ctx, "W-1")
		require.NoError(t, err)
		assert.Equal(t, "Nut", got.Name)
		assert.Equal(t, "blue", got.Color)
	})

	t.Run("insert if absent rejects a taken key", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.InsertIfAbsent(ctx, &widget{Code: "W-1", Name: "Bolt"}))

		err := table.InsertIfAbsent(ctx, &widget{Code: "W-1", Name: "Impostor"})
		assert.ErrorIs(t, err, ErrConditionFailed)

		got, err := table.Get(ctx, "W-1")
		require.NoError(t, err)
		assert.Equal(t, "Bolt", got.Name)
	})

	t.Run("scan with and without filter", func(t *testing.T) {
		table := newTable(t)
		for _, w := range []widget{
			{Code: "W-1", Name: "Bolt", Color: "red"},
			{Code: "W-2", Name: "Nut", Color: "blue"},
			{Code: "W-3", Name: "Gear", Color: "red"},
			{Code: "W-4", Name: "Bolt", Color: "blue"},
			{Code: "W-5", Name: "Bolt", Color: "red"},
		} {
			w := w
			require.NoError(t, table.Put(ctx, &w))
		}

		all, err := table.Scan(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 5)

		red, err := table.Scan(ctx, Filter{"color": "red"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"W-1", "W-3", "W-5"}, codes(red))

		redBolts, err := table.Scan(ctx, Filter{"color": "red", "name": "Bolt"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"W-1", "W-5"}, codes(redBolts))

		none, err := table.Scan(ctx, Filter{"color": "green"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("update replaces named fields", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.Put(ctx, &widget{Code: "W-1", Name: "Bolt", Color: "red", Price: ptr(1)}))

		err := table.Update(ctx, "W-1", Fields{"name": "Bolt XL", "price": ptr(3)})
		require.NoError(t, err)

		got, err := table.Get(ctx, "W-1")
		require.NoError(t, err)
		assert.Equal(t, "Bolt XL", got.Name)
		assert.Equal(t, "red", got.Color)
		require.NotNil(t, got.Price)
		assert.InDelta(t, 3.0, *got.Price, 1e-9)
	})

	t.Run("update missing key returns ErrNotFound", func(t *testing.T) {
		table := newTable(t)

		err := table.Update(ctx, "W-404", Fields{"name": "Ghost"})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = table.Get(ctx, "W-404")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is unconditional", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.Put(ctx, &widget{Code: "W-1", Name: "Bolt"}))

		require.NoError(t, table.Delete(ctx, "W-1"))
		require.NoError(t, table.Delete(ctx, "W-1"))

		_, err := table.Get(ctx, "W-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func codes(ws []widget) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Code)
	}
	return out
}
