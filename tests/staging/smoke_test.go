//go:build staging

package staging

import (
	"net/http"
	"testing"
)

type casesEnvelope struct {
	OK    bool `json:"ok"`
	Cases []struct {
		ID    int    `json:"id"`
		Price int64  `json:"price"`
		Name  string `json:"name"`
	} `json:"cases"`
}

type openEnvelope struct {
	OK    bool `json:"ok"`
	Prize struct {
		ID string `json:"id"`
	} `json:"prize"`
	NewBalance int64 `json:"newBalance"`
}

type listingEnvelope struct {
	OK      bool `json:"ok"`
	Listing struct {
		ID    int64 `json:"id"`
		Price int64 `json:"price"`
	} `json:"listing"`
}

type buyEnvelope struct {
	OK         bool  `json:"ok"`
	NewBalance int64 `json:"newBalance"`
}

// TestCaseAndMarketFlow opens a case, lists the prize and buys it with a
// second account, checking balances at every step.
func TestCaseAndMarketFlow(t *testing.T) {
	seller := uniqueUser("seller")
	buyer := uniqueUser("buyer")

	resp, body := makeRequest(t, http.MethodGet, "/api/v1/cases", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("List cases: expected 200, got %d", resp.StatusCode)
	}
	var cases casesEnvelope
	decode(t, body, &cases)
	if len(cases.Cases) == 0 {
		t.Fatal("Expected at least one case")
	}
	first := cases.Cases[0]

	resp, body = makeRequest(t, http.MethodPost, "/api/v1/cases/open", seller, map[string]interface{}{"caseId": first.ID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Open case: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
	var opened openEnvelope
	decode(t, body, &opened)
	if opened.NewBalance != 1000-first.Price {
		t.Errorf("Expected balance %d after opening, got %d", 1000-first.Price, opened.NewBalance)
	}

	resp, body = makeRequest(t, http.MethodPost, "/api/v1/market/sell", seller, map[string]interface{}{"itemId": opened.Prize.ID, "price": 40})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Sell: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
	var listed listingEnvelope
	decode(t, body, &listed)

	resp, _ = makeRequest(t, http.MethodPost, "/api/v1/market/buy", seller, map[string]interface{}{"listingId": listed.Listing.ID})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Buying own listing: expected 400, got %d", resp.StatusCode)
	}

	resp, body = makeRequest(t, http.MethodPost, "/api/v1/market/buy", buyer, map[string]interface{}{"listingId": listed.Listing.ID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Buy: expected 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
	var bought buyEnvelope
	decode(t, body, &bought)
	if bought.NewBalance != 960 {
		t.Errorf("Expected buyer balance 960, got %d", bought.NewBalance)
	}

	resp, _ = makeRequest(t, http.MethodPost, "/api/v1/market/buy", buyer, map[string]interface{}{"listingId": listed.Listing.ID})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Second buy: expected 404, got %d", resp.StatusCode)
	}

	resp, body = makeRequest(t, http.MethodGet, "/api/v1/user", seller, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Get seller: expected 200, got %d", resp.StatusCode)
	}
	var u userEnvelope
	decode(t, body, &u)
	if u.User.Signals != opened.NewBalance+40 {
		t.Errorf("Expected seller balance %d, got %d", opened.NewBalance+40, u.User.Signals)
	}
}
