package service

import (
	"testing"

	"github.com/niksmo/shopcart/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartServiceAddToCart(t *testing.T) {
	t.Run("MergesSameProduct", func(t *testing.T) {
		catalog := seededCatalog(t)
		s := NewCartService(catalog)

		require.NoError(t, s.AddToCart(t.Context(), "2", "2"))
		require.NoError(t, s.AddToCart(t.Context(), "2", "3"))

		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
		assert.Equal(t, 5*3000, s.Total())

		product, _ := catalog.FindByID(2)
		assert.Same(t, product, lines[0].Product)
	})

	t.Run("KeepsInsertionOrder", func(t *testing.T) {
		s := NewCartService(seededCatalog(t))

		require.NoError(t, s.AddToCart(t.Context(), "3", "1"))
		require.NoError(t, s.AddToCart(t.Context(), "1", "1"))
		require.NoError(t, s.AddToCart(t.Context(), "3", "1"))

		lines := s.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, 3, lines[0].Product.ID)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 1, lines[1].Product.ID)
	})

	t.Run("QuantityBounds", func(t *testing.T) {
		tests := map[string]struct {
			quantity string
			wantErr  error
		}{
			"one":         {quantity: "1"},
			"ninety nine": {quantity: "99"},
			"zero":        {quantity: "0", wantErr: domain.ErrInvalidQuantity},
			"hundred":     {quantity: "100", wantErr: domain.ErrInvalidQuantity},
			"negative":    {quantity: "-1", wantErr: domain.ErrInvalidQuantity},
			"empty":       {quantity: "", wantErr: domain.ErrInvalidQuantity},
			"fraction":    {quantity: "1.5", wantErr: domain.ErrInvalidQuantity},
		}

		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				s := NewCartService(seededCatalog(t))
				err := s.AddToCart(t.Context(), "1", tt.quantity)
				if tt.wantErr == nil {
					require.NoError(t, err)
					assert.Len(t, s.Lines(), 1)
					return
				}
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, s.IsEmpty())
			})
		}
	})

	t.Run("BadIdentifier", func(t *testing.T) {
		tests := map[string]struct {
			productID string
			wantErr   error
		}{
			"empty":     {productID: "", wantErr: domain.ErrInvalidIdentifier},
			"text":      {productID: "húfa", wantErr: domain.ErrInvalidIdentifier},
			"zero":      {productID: "0", wantErr: domain.ErrInvalidIdentifier},
			"negative":  {productID: "-2", wantErr: domain.ErrInvalidIdentifier},
			"not found": {productID: "999", wantErr: domain.ErrNotFound},
		}

		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				s := NewCartService(seededCatalog(t))
				require.NoError(t, s.AddToCart(t.Context(), "1", "1"))

				err := s.AddToCart(t.Context(), tt.productID, "1")
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, s.Lines(), 1)
			})
		}
	})

	t.Run("MergedQuantityIsNotCapped", func(t *testing.T) {
		s := NewCartService(seededCatalog(t))

		require.NoError(t, s.AddToCart(t.Context(), "1", "99"))
		require.NoError(t, s.AddToCart(t.Context(), "1", "5"))

		assert.Equal(t, 104, s.Lines()[0].Quantity)
	})
}

func TestCartServiceTotal(t *testing.T) {
	s := NewCartService(seededCatalog(t))
	assert.Zero(t, s.Total())
	assert.Equal(t, "Karfan er tóm.", s.Summary())

	adds := []struct{ id, quantity string }{
		{"1", "1"}, {"2", "2"}, {"1", "3"}, {"3", "10"}, {"2", "99"},
	}
	for _, a := range adds {
		require.NoError(t, s.AddToCart(t.Context(), a.id, a.quantity))

		var want int
		for _, l := range s.Lines() {
			want += l.Product.Price * l.Quantity
		}
		assert.Equal(t, want, s.Total())
	}
}

func TestCartServiceSummary(t *testing.T) {
	s := NewCartService(seededCatalog(t))
	require.NoError(t, s.AddToCart(t.Context(), "1", "1"))
	require.NoError(t, s.AddToCart(t.Context(), "2", "2"))

	want := "HTML húfa — 5.000 kr.\n" +
		"CSS sokkar — 2x3.000 kr. samtals 6.000 kr.\n" +
		"Samtals: 11.000 kr."
	assert.Equal(t, want, s.Summary())
}

func TestCartServiceSnapshot(t *testing.T) {
	s := NewCartService(seededCatalog(t))
	require.NoError(t, s.AddToCart(t.Context(), "1", "1"))

	c := s.Cart()
	c.Lines[0].Quantity = 50

	assert.Equal(t, 1, s.Lines()[0].Quantity)
}

func TestCartServiceProduct(t *testing.T) {
	catalog := seededCatalog(t)
	s := NewCartService(catalog)

	p, err := s.Product(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, "JavaScript jakki", p.Title)

	_, err = s.Product("abc")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	_, err = s.Product("4")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
