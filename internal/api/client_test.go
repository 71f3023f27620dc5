package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfwise/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewClient(Config{BaseURL: ts.URL + "/api"}), ts
}

func TestRequest_HeadersAndBearer(t *testing.T) {
	var gotAuth, gotType, gotAccept, gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(domain.User{ID: 7, Email: "a@b.co", Role: domain.RoleClient})
	})

	u, err := c.Users.Me(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, domain.RoleClient, u.Role)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "/api/users/me", gotPath)
}

func TestRequest_PublicCallSendsNoAuthorization(t *testing.T) {
	var gotAuth string
	var sawAuth bool
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth, sawAuth = r.Header.Get("Authorization"), r.Header.Get("Authorization") != ""
		w.Write([]byte(`[{"id":1,"name":"Books"}]`))
	})

	cats, err := c.Categories.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 1)
	assert.False(t, sawAuth, "unexpected Authorization %q", gotAuth)
}

func TestRequest_MissingTokenShortCircuits(t *testing.T) {
	var hits int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})
	ctx := context.Background()

	_, err := c.Cart.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.ErrorIs(t, c.Wishlist.Add(ctx, "", "p1"), ErrNotSignedIn)
	_, err = c.Orders.Create(ctx, "", domain.NewOrder{})
	assert.ErrorIs(t, err, ErrNotSignedIn)
	_, err = c.Profile.Save(ctx, "", domain.Profile{})
	assert.ErrorIs(t, err, ErrNotSignedIn)
	_, err = c.Users.Me(ctx, "")
	assert.ErrorIs(t, err, ErrNotSignedIn)

	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestRequest_ErrorMessageFromBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"SKU already exists"}`))
	})

	_, err := c.Products.Create(context.Background(), "tok", domain.NewProduct{Name: "x"})
	require.Error(t, err)
	assert.Equal(t, "SKU already exists", err.Error())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestRequest_ErrorFallbackMessage(t *testing.T) {
	bodies := []string{``, `not json`, `{"error":"nope"}`, `{"message":""}`}
	for _, body := range bodies {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(body))
		})
		_, err := c.Products.Get(context.Background(), "p1")
		require.Error(t, err)
		assert.Equal(t, "HTTP error! status: 502", err.Error(), "body %q", body)
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{Status: 404, Message: "x"}))
	assert.True(t, IsNotFound(&APIError{Status: 400, Message: "User Not Found"}))
	assert.True(t, IsNotFound(&APIError{Status: 500, Message: "HTTP error! status: 404"}))
	assert.False(t, IsNotFound(&APIError{Status: 500, Message: "boom"}))
	assert.False(t, IsNotFound(errors.New("not found")))
	assert.False(t, IsNotFound(nil))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "bad", Message(&APIError{Status: 400, Message: "bad"}, "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("dial tcp"), "fallback"))
}

func TestProductsList_Envelopes(t *testing.T) {
	bodies := map[string]string{
		"data":     `{"data":[{"id":"a","name":"A","quantity":0},{"id":"b","name":"B","quantity":3}],"total":12,"page":2,"pageSize":2,"totalPages":6}`,
		"products": `{"products":[{"id":"a","name":"A"},{"id":"b","name":"B"}],"total":12,"page":2,"limit":2}`,
		"bare":     `[{"id":"a","name":"A"},{"id":"b","name":"B"}]`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			var query string
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.RawQuery
				w.Write([]byte(body))
			})
			page, err := c.Products.List(context.Background(), ProductQuery{Category: "3", Search: "lamp", Page: 2, Limit: 2})
			require.NoError(t, err)
			require.Len(t, page.Items, 2)
			assert.Equal(t, "a", page.Items[0].ID)
			assert.Equal(t, 2, page.Page)
			assert.Equal(t, "category=3&limit=2&page=2&search=lamp", query)
			if name != "bare" {
				assert.Equal(t, 12, page.Total)
				assert.Equal(t, 6, page.TotalPages)
			}
		})
	}
}

func TestRequest_JSONBody(t *testing.T) {
	var got domain.OrderLine
	var method string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &got)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"added"}`))
	})

	require.NoError(t, c.Cart.AddItem(context.Background(), "tok", "p-9", 3))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, domain.OrderLine{ProductID: "p-9", Quantity: 3}, got)
}

func TestRequest_NoContent(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	_, err := c.Reviews.Update(context.Background(), "tok", 4, domain.ReviewInput{Rating: 5})
	assert.NoError(t, err)
}

func TestRequest_BrotliBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "br", r.Header.Get("Accept-Encoding"))
		w.Header().Set("Content-Encoding", "br")
		bw := brotli.NewWriter(w)
		bw.Write([]byte(`{"data":{"id":"lamp-1","name":"Desk Lamp","price":19.5,"quantity":4}}`))
		bw.Close()
	})

	p, err := c.Products.Get(context.Background(), "lamp-1")
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", p.Name)
	assert.Equal(t, 19.5, p.Price)
}

func TestRequest_InvalidJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`invalid-json`))
	})
	_, err := c.Orders.List(context.Background(), "tok")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid character")
}

func TestRequest_TransportFailure(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Categories.List(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestUnwrap(t *testing.T) {
	assert.JSONEq(t, `[1]`, string(unwrap([]byte(`{"data":[1]}`))))
	assert.JSONEq(t, `[2]`, string(unwrap([]byte(`{"orders":[2]}`), "orders")))
	assert.Equal(t, "null", string(unwrap([]byte(`{"orders":null,"x":1}`), "orders")))
	assert.Equal(t, "null", string(unwrap([]byte(`{"data":null}`))))
	assert.JSONEq(t, `[4]`, string(unwrap([]byte(`{"data":null,"items":[4]}`), "items")))
	assert.JSONEq(t, `{"id":1}`, string(unwrap([]byte(` {"id":1} `))))
	assert.JSONEq(t, `[3]`, string(unwrap([]byte(`[3]`))))
}

func TestWishlistList_NullCollectionIsEmpty(t *testing.T) {
	for _, body := range []string{`{"items":null}`, `{"data":null}`, `{"items":[]}`} {
		t.Run(body, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			items, err := c.Wishlist.List(context.Background(), "tok")
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}
