package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageJSON = `{
  "products": [
    {"id": 1, "title": "Café Premium", "brand": "Juan Valdez", "category": "bebidas",
     "price": 35.5, "stock": 10, "thumbnail": "https://cdn.example/1.jpg",
     "description": "Café de origen", "rating": 4.7, "extra": "se ignora"},
    {"id": 2, "title": "Sin opcionales"}
  ],
  "total": 194, "skip": 0, "limit": 2
}`

func TestFetchPage_DecodificaLaPagina(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"limit": r.URL.Query().Get("limit"),
			"skip":  r.URL.Query().Get("skip"),
		}
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pageJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items, err := c.FetchPage(context.Background(), 30, 2)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"limit": "2", "skip": "30"}, gotQuery)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "Café Premium", items[0].Title)
	assert.True(t, items[0].Price.Equal(decimal.NewFromFloat(35.5)))
	assert.Equal(t, 10, items[0].Stock)

	// Campos opcionales ausentes quedan en su valor cero.
	assert.Equal(t, "", items[1].Brand)
	assert.True(t, items[1].Price.IsZero())
}

func TestFetchPage_ParametrosInvalidos(t *testing.T) {
	c := NewClient("http://ejemplo.invalido")

	_, err := c.FetchPage(context.Background(), 0, 0)
	assert.Error(t, err, "limit no positivo se rechaza sin salir a la red")

	_, err = c.FetchPage(context.Background(), -1, 30)
	assert.Error(t, err, "skip negativo se rechaza sin salir a la red")
}

func TestFetchPage_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchPage(context.Background(), 0, 30)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestFetchPage_CuerpoMalformado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("esto no es json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchPage(context.Background(), 0, 30)
	assert.Error(t, err)
}

func TestFetchPage_ContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).FetchPage(ctx, 0, 30)
	assert.Error(t, err)
}
