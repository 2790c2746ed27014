package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestCreateTransaction(t *testing.T) {
	srv := newTestServer(t, 100)

	body := `{"userId":"u1","title":"Groceries","amount":"-42.50","category":"food"}`
	rr := doRequest(srv, http.MethodPost, "/api/transactions", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var tx transactionJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &tx); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tx.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if tx.Amount.Cents != -4250 {
		t.Fatalf("amount lost precision: %d", tx.Amount.Cents)
	}
	if tx.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be assigned")
	}

	// The wire form keeps the exact decimal the client sent.
	raw := rr.Body.String()
	if want := `"amount":-42.50`; !strings.Contains(raw, want) {
		t.Fatalf("expected %s in %s", want, raw)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	srv := newTestServer(t, 100)

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"userId":"u1","amount":"10.00","category":"food"}`},
		{"missing user", `{"title":"Groceries","amount":"10.00","category":"food"}`},
		{"missing category", `{"userId":"u1","title":"Groceries","amount":"10.00"}`},
		{"zero amount", `{"userId":"u1","title":"Groceries","amount":"0","category":"food"}`},
		{"bad amount", `{"userId":"u1","title":"Groceries","amount":"abc","category":"food"}`},
		{"malformed json", `{"userId":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doRequest(srv, http.MethodPost, "/api/transactions", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			var errBody map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &errBody); err != nil {
				t.Fatalf("error responses must be JSON: %v", err)
			}
			if errBody["error"] == "" {
				t.Fatalf("expected error message in body")
			}
		})
	}

	// No partial writes on rejected input.
	rr := doRequest(srv, http.MethodGet, "/api/transactions/u1", "")
	var txs []transactionJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &txs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("rejected requests must not create records, found %d", len(txs))
	}
}

func TestListTransactionsNewestFirst(t *testing.T) {
	srv := newTestServer(t, 100)

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		body := fmt.Sprintf(`{"userId":"u1","title":%q,"amount":"10.00","category":"misc"}`, title)
		if rr := doRequest(srv, http.MethodPost, "/api/transactions", body); rr.Code != http.StatusCreated {
			t.Fatalf("create %s: %d", title, rr.Code)
		}
	}

	rr := doRequest(srv, http.MethodGet, "/api/transactions/u1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d", rr.Code)
	}
	var txs []transactionJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &txs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	for i, want := range []string{"third", "second", "first"} {
		if txs[i].Title != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, txs[i].Title)
		}
	}
}

func TestListTransactionsEmpty(t *testing.T) {
	srv := newTestServer(t, 100)

	rr := doRequest(srv, http.MethodGet, "/api/transactions/nobody", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d", rr.Code)
	}
	if got := rr.Body.String(); got != "[]\n" && got != "[]" {
		t.Fatalf("unknown user should yield an empty array, got %q", got)
	}
}

func TestSummary(t *testing.T) {
	srv := newTestServer(t, 100)

	creates := []string{
		`{"userId":"u1","title":"Salary","amount":"1000","category":"job"}`,
		`{"userId":"u1","title":"Groceries","amount":"-150.75","category":"food"}`,
	}
	for _, body := range creates {
		if rr := doRequest(srv, http.MethodPost, "/api/transactions", body); rr.Code != http.StatusCreated {
			t.Fatalf("create: %d %s", rr.Code, rr.Body.String())
		}
	}

	rr := doRequest(srv, http.MethodGet, "/api/transactions/summary/u1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("summary status=%d", rr.Code)
	}
	var sum summaryJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.Balance.Cents != 84925 || sum.Income.Cents != 100000 || sum.Expenses.Cents != 15075 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestSummaryEmptyLedger(t *testing.T) {
	srv := newTestServer(t, 100)

	rr := doRequest(srv, http.MethodGet, "/api/transactions/summary/nobody", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("summary status=%d", rr.Code)
	}
	var sum summaryJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.Balance.Cents != 0 || sum.Income.Cents != 0 || sum.Expenses.Cents != 0 {
		t.Fatalf("empty ledger expected zero summary, got %+v", sum)
	}
}

func TestSummaryCacheInvalidatedOnWrite(t *testing.T) {
	srv := newTestServer(t, 100)

	// Prime the cache with an empty summary.
	doRequest(srv, http.MethodGet, "/api/transactions/summary/u1", "")

	body := `{"userId":"u1","title":"Salary","amount":"1000","category":"job"}`
	rr := doRequest(srv, http.MethodPost, "/api/transactions", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: %d", rr.Code)
	}
	var tx transactionJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &tx); err != nil {
		t.Fatalf("decode create: %v", err)
	}

	rr = doRequest(srv, http.MethodGet, "/api/transactions/summary/u1", "")
	var sum summaryJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.Income.Cents != 100000 {
		t.Fatalf("summary stale after create: %+v", sum)
	}

	rr = doRequest(srv, http.MethodDelete, "/api/transactions/"+tx.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("delete: %d", rr.Code)
	}

	rr = doRequest(srv, http.MethodGet, "/api/transactions/summary/u1", "")
	if err := json.Unmarshal(rr.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.Income.Cents != 0 || sum.Balance.Cents != 0 {
		t.Fatalf("summary stale after delete: %+v", sum)
	}
}

func TestDeleteTransaction(t *testing.T) {
	srv := newTestServer(t, 100)

	body := `{"userId":"u1","title":"Salary","amount":"1000","category":"job"}`
	rr := doRequest(srv, http.MethodPost, "/api/transactions", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: %d", rr.Code)
	}
	var tx transactionJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &tx); err != nil {
		t.Fatalf("decode create: %v", err)
	}

	rr = doRequest(srv, http.MethodDelete, "/api/transactions/"+tx.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status=%d: %s", rr.Code, rr.Body.String())
	}
	var msg map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &msg); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if msg["message"] == "" {
		t.Fatalf("expected confirmation message")
	}

	rr = doRequest(srv, http.MethodGet, "/api/transactions/u1", "")
	var txs []transactionJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &txs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("deleted record still listed")
	}
}

func TestDeleteTransactionNotFound(t *testing.T) {
	srv := newTestServer(t, 100)

	rr := doRequest(srv, http.MethodDelete, "/api/transactions/missing", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	// Deleting the same id twice is not idempotent.
	body := `{"userId":"u1","title":"Salary","amount":"1000","category":"job"}`
	cr := doRequest(srv, http.MethodPost, "/api/transactions", body)
	var tx transactionJSON
	if err := json.Unmarshal(cr.Body.Bytes(), &tx); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if rr := doRequest(srv, http.MethodDelete, "/api/transactions/"+tx.ID, ""); rr.Code != http.StatusOK {
		t.Fatalf("first delete: %d", rr.Code)
	}
	if rr := doRequest(srv, http.MethodDelete, "/api/transactions/"+tx.ID, ""); rr.Code != http.StatusNotFound {
		t.Fatalf("second delete expected 404, got %d", rr.Code)
	}
}
