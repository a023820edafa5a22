package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"woracle/core"
	"woracle/pkg/number"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
)

type fakeOracle struct {
	price sdkmath.Int
	err   error
}

func (f *fakeOracle) LivePrice(ctx context.Context) (sdkmath.Int, error) {
	return f.price, f.err
}

func (f *fakeOracle) LatestRoundData(ctx context.Context) (*core.RoundData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &core.RoundData{
		RoundID:         42,
		Answer:          f.price,
		StartedAt:       1700000000,
		UpdatedAt:       1700000000,
		AnsweredInRound: 42,
	}, nil
}

func (f *fakeOracle) Decimals() uint8 {
	return core.OracleDecimals
}

type fakeGovernance struct {
	owner   string
	pending string
	ceiling sdkmath.Int
}

func (f *fakeGovernance) Ceiling(ctx context.Context) (sdkmath.Int, error) {
	return f.ceiling, nil
}

func (f *fakeGovernance) SetCeiling(ctx context.Context, caller string, ceiling sdkmath.Int) error {
	if !ceiling.IsPositive() {
		return core.ErrZeroCeiling
	}
	if caller != f.owner {
		return core.ErrNotOwner
	}
	f.ceiling = ceiling
	return nil
}

func (f *fakeGovernance) TransferOwnership(ctx context.Context, caller, nominee string) error {
	if caller != f.owner {
		return core.ErrNotOwner
	}
	f.pending = nominee
	return nil
}

func (f *fakeGovernance) AcceptOwnership(ctx context.Context, caller string) error {
	if f.pending == "" || caller != f.pending {
		return core.ErrNotPendingOwner
	}
	f.owner = caller
	f.pending = ""
	return nil
}

func (f *fakeGovernance) RenounceOwnership(ctx context.Context, caller string) error {
	return core.ErrRenounceDisabled
}

func newTestServer(price string) (*httptest.Server, *fakeGovernance) {
	gov := &fakeGovernance{owner: "alice", ceiling: number.ToScaled(number.Decimal("1.5"))}
	oracle := &fakeOracle{price: number.ToScaled(number.Decimal(price))}
	return httptest.NewServer(Handle(oracle, gov)), gov
}

func TestDecimalsHandler(t *testing.T) {
	ts, _ := newTestServer("1.05")
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/decimals")
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Decimals uint8 `json:"decimals"`
	}
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, uint8(18), body.Decimals)
}

func TestLatestRoundDataHandler(t *testing.T) {
	ts, _ := newTestServer("1.05")
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/latest-round-data")
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		RoundID         int64  `json:"round_id"`
		Answer          string `json:"answer"`
		AnsweredInRound int64  `json:"answered_in_round"`
		Decimals        uint8  `json:"decimals"`
	}
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(42), body.RoundID)
	assert.Equal(t, body.RoundID, body.AnsweredInRound)
	assert.Equal(t, "1050000000000000000", body.Answer)
	assert.Equal(t, uint8(18), body.Decimals)
}

func TestLivePriceHandler(t *testing.T) {
	ts, _ := newTestServer("1.05")
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/price")
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Price string `json:"price"`
		Value string `json:"value"`
	}
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1050000000000000000", body.Price)
	assert.Equal(t, "1.05", body.Value)
}

func postJSON(t *testing.T, url, key, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	assert.Nil(t, err)
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(headerOracleKey, key)
	}

	resp, err := http.DefaultClient.Do(req)
	assert.Nil(t, err)
	return resp
}

func TestSetCeilingHandler(t *testing.T) {
	ts, gov := newTestServer("1.05")
	defer ts.Close()

	t.Run("owner", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/ceiling", "alice", `{"ceiling":"1.0"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "1000000000000000000", gov.ceiling.String())
	})

	t.Run("non owner", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/ceiling", "mallory", `{"ceiling":"9000"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "1000000000000000000", gov.ceiling.String())
	})

	t.Run("zero ceiling", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/ceiling", "alice", `{"ceiling":"0"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestOwnershipHandlers(t *testing.T) {
	ts, gov := newTestServer("1.05")
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/ownership/transfer", "alice", `{"nominee":"bob"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "bob", gov.pending)

	resp = postJSON(t, ts.URL+"/ownership/accept", "bob", `{}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "bob", gov.owner)

	resp = postJSON(t, ts.URL+"/ownership/renounce", "bob", `{}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "bob", gov.owner)
}
