package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const screenerPage = `<!DOCTYPE html>
<html>
<body>
<table class="table table-striped">
  <tr>
    <th>Sr.</th><th>Stock Name</th><th>Symbol</th><th>Links</th><th>% Chg</th><th>Price</th><th>Volume</th>
  </tr>
  <tr>
    <td>1</td><td>Tata Consultancy Services</td><td>TCS</td><td><a href="#">chart</a></td><td>3.4%</td><td>3,500.25</td><td>120000</td>
  </tr>
  <tr>
    <td>2</td><td>Infosys Limited</td><td>$INFY</td><td><a href="#">chart</a></td><td>1.2%</td><td>1500.10</td><td>98000</td>
  </tr>
  <tr>
    <td>3</td><td>Broken Row</td><td>BRKN</td>
  </tr>
  <tr>
    <td>4</td><td>No Price Ltd</td><td>NOPX</td><td></td><td>0.5%</td><td>n/a</td><td>5</td>
  </tr>
</table>
</body>
</html>`

func newTestScreener() ScreenerRepository {
	return NewScreenerRepository(2*time.Second, 100)
}

func TestFetchRows_ParsesDataRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(screenerPage))
	}))
	defer server.Close()

	rows, err := newTestScreener().FetchRows(context.Background(), server.URL)
	require.NoError(t, err)

	// the 3-cell row is dropped; the unparsable-price row survives with a
	// zero price
	require.Len(t, rows, 3)

	require.Equal(t, "Tata Consultancy Services", rows[0].Name)
	require.Equal(t, "TCS", rows[0].Symbol)
	require.Equal(t, "3500.25", rows[0].Price.String())

	require.Equal(t, "$INFY", rows[1].Symbol)
	require.Equal(t, "1500.1", rows[1].Price.String())

	require.Equal(t, "NOPX", rows[2].Symbol)
	require.True(t, rows[2].Price.IsZero())
}

func TestFetchRows_MissingTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>results are still loading</p></body></html>`))
	}))
	defer server.Close()

	_, err := newTestScreener().FetchRows(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrTableNotFound)
}

func TestFetchRows_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestScreener().FetchRows(context.Background(), server.URL)
	require.Error(t, err)
}

func TestFetchRows_SlowSourceTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(screenerPage))
	}))
	defer server.Close()

	repo := NewScreenerRepository(50*time.Millisecond, 100)
	_, err := repo.FetchRows(context.Background(), server.URL)
	require.Error(t, err)
}
