package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	return client, srv
}

func TestNewClientRejectsBadURLs(t *testing.T) {
	for _, bad := range []string{"", "not-a-url", "localhost:5000", "//missing-scheme"} {
		_, err := NewClient(bad)
		assert.ErrorIs(t, err, ErrInvalidBaseURL, "url %q", bad)
	}

	client, err := NewClient("http://localhost:5000/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", client.BaseURL, "trailing slash is trimmed")
}

func TestListCustomersWire(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"customers":[{"id":1,"firstName":"Jane","lastName":"Wanjiku","phoneNumber":"0712345678","monthlyCharge":300,"closingBalance":150.50,"customerType":"PREPAID","garbageCollectionDay":"MONDAY","status":"ACTIVE"}],"total":47}`))
	})

	customers, total, err := client.ListCustomers(context.Background(), SearchQuery{}, PageRequest{Page: 2, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, "/customers", gotPath)
	assert.Equal(t, []string{"3"}, gotQuery["page"], "0-based page 2 travels as 3")
	assert.Equal(t, []string{"10"}, gotQuery["limit"])

	require.Len(t, customers, 1)
	assert.Equal(t, "Jane Wanjiku", customers[0].FullName())
	assert.True(t, customers[0].MonthlyCharge.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 47, total)
}

func TestListCustomersRoutesBySearchKind(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"customers":[],"total":0}`))
	})
	ctx := context.Background()

	_, _, err := client.ListCustomers(ctx, ParseSearch("0712345678"), PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/search-customer-by-phone", gotPath)

	_, _, err = client.ListCustomers(ctx, ParseSearch("Jane"), PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/search-customer-by-name", gotPath)
}

func TestListPaymentsPhoneTermTravelsAsNameParam(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"payments":[],"total":0}`))
	})

	_, _, err := client.ListPayments(context.Background(), ParseSearch("0712345678"), PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, "/payments/search-by-name", gotPath)
	assert.Equal(t, []string{"0712345678"}, gotQuery["firstName"], "digits go through the param the endpoint reads")
	assert.NotContains(t, gotQuery, "phone")
}

func TestListEnvelopeWithoutTotalFallsBackToLength(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"payments":[{"id":1,"amount":100},{"id":2,"amount":200}]}`))
	})

	payments, total, err := client.ListPayments(context.Background(), SearchQuery{}, PageRequest{})
	require.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, 2, total)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
		msg    string
	}{
		{"unauthenticated", 401, `{"message":"Unauthorized"}`, IsUnauthenticated, "Unauthorized"},
		{"feature disabled", 402, `{"error":"subscription expired"}`, IsFeatureDisabled, "subscription expired"},
		{"validation", 400, `{"message":"phoneNumber is required"}`, IsValidation, "phoneNumber is required"},
		{"not found", 404, `{}`, IsNotFound, "Not Found"},
		{"server error", 500, `boom`, IsServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.GetCustomer(context.Background(), 1)
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.False(t, IsNetwork(err))
			assert.Equal(t, tt.status, StatusOf(err))
			assert.Equal(t, tt.msg, MessageOf(err))
		})
	}
}

func TestNetworkErrorIsNotAnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	srv.Close()

	_, err = client.GetCustomer(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.Equal(t, 0, StatusOf(err))
	assert.False(t, IsServerError(err))
}

func TestSessionCookieLifecycle(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/signin" {
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc.def.ghi", Path: "/"})
			w.Write([]byte(`{"id":1,"firstName":"Admin","phoneNumber":"0700000000"}`))
			return
		}
		// Subsequent calls must replay the cookie.
		if _, err := r.Cookie("token"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthorized"}`))
			return
		}
		w.Write([]byte(`{"id":1,"firstName":"Jane"}`))
	})
	ctx := context.Background()

	_, err := client.GetCustomer(ctx, 1)
	assert.True(t, IsUnauthenticated(err), "no session yet")

	user, err := client.SignIn(ctx, SignInRequest{PhoneNumber: "0700000000", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.FirstName)
	assert.Equal(t, "abc.def.ghi", client.SessionToken())

	_, err = client.GetCustomer(ctx, 1)
	assert.NoError(t, err, "cookie replayed after sign-in")

	client.ClearSession()
	assert.Empty(t, client.SessionToken())
	_, err = client.GetCustomer(ctx, 1)
	assert.True(t, IsUnauthenticated(err), "session forgotten")
}

func TestSearchCustomersUsesQueryParam(t *testing.T) {
	var gotQuery string
	var gotLimit string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"customers":[],"total":0}`))
	})

	_, _, err := client.SearchCustomers(context.Background(), "Jane", PageRequest{Size: 7})
	require.NoError(t, err)
	assert.Equal(t, "Jane", gotQuery)
	assert.Equal(t, "7", gotLimit)
}

func TestDownloadReceiptReturnsRawBody(t *testing.T) {
	pdf := []byte("%PDF-1.4 receipt")
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/download-receipt/9", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	})

	body, err := client.DownloadReceipt(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, pdf, body)
}

func TestUpdateUserMergesUserID(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/update-user", r.URL.Path)
		require.NoError(t, decodeJSONBody(r, &gotBody))
		w.Write([]byte(`{"id":3,"firstName":"Jane"}`))
	})

	_, err := client.UpdateUser(context.Background(), 3, map[string]any{"firstName": "Jane"})
	require.NoError(t, err)
	assert.Equal(t, float64(3), gotBody["userId"])
	assert.Equal(t, "Jane", gotBody["firstName"])
}

func decodeJSONBody(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
