package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

type status struct {
	Value string `json:"value"`
}

type payment struct {
	PaymentID string `json:"paymentId"`
	Status    status `json:"status"`
}

type bill struct {
	BillID   string    `json:"billId"`
	Status   status    `json:"status"`
	PayURL   string    `json:"payUrl"`
	Payments []payment `json:"payments"`
}

// FakeAcquirer serves the subset of the acquirer API the engine calls and
// lets a test move bills and refunds through their states.
type FakeAcquirer struct {
	Server *httptest.Server

	mu           sync.Mutex
	bills        map[string]*bill
	refunds      map[string]string
	refundStatus string
}

func NewFakeAcquirer() *FakeAcquirer {
	a := &FakeAcquirer{
		bills:        make(map[string]*bill),
		refunds:      make(map[string]string),
		refundStatus: "COMPLETED",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /sites/{site}/bills/{billId}/{$}", a.createBill)
	mux.HandleFunc("GET /sites/{site}/bills/{billId}/details/{$}", a.getBill)
	mux.HandleFunc("GET /sites/{site}/payments/{paymentId}/{$}", a.getPayment)
	mux.HandleFunc("PUT /sites/{site}/payments/{paymentId}/refunds/{refundId}/{$}", a.createRefund)
	mux.HandleFunc("GET /sites/{site}/payments/{paymentId}/refunds/{refundId}/{$}", a.getRefund)
	a.Server = httptest.NewServer(mux)
	return a
}

func (a *FakeAcquirer) Close() {
	a.Server.Close()
}

// Pay attaches a completed payment to the bill.
func (a *FakeAcquirer) Pay(billID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b := a.bills[billID]
	b.Status.Value = "PAID"
	b.Payments = []payment{{PaymentID: "pay-" + billID, Status: status{Value: "COMPLETED"}}}
}

func (a *FakeAcquirer) Expire(billID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bills[billID].Status.Value = "EXPIRED"
}

// RefundRequests counts distinct refund ids seen so far.
func (a *FakeAcquirer) RefundRequests() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.refunds)
}

func (a *FakeAcquirer) createBill(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := r.PathValue("billId")
	b := &bill{
		BillID: id,
		Status: status{Value: "CREATED"},
		PayURL: a.Server.URL + "/pay/" + id,
	}
	a.bills[id] = b
	writeJSON(w, http.StatusOK, b)
}

func (a *FakeAcquirer) getBill(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.bills[r.PathValue("billId")]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (a *FakeAcquirer) getPayment(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := r.PathValue("paymentId")
	for _, b := range a.bills {
		for _, p := range b.Payments {
			if p.PaymentID == id {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
	}
	notFound(w)
}

func (a *FakeAcquirer) createRefund(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := r.PathValue("refundId")
	if _, ok := a.refunds[id]; !ok {
		a.refunds[id] = a.refundStatus
	}
	writeJSON(w, http.StatusOK, map[string]any{"refundId": id, "status": status{Value: a.refunds[id]}})
}

func (a *FakeAcquirer) getRefund(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := r.PathValue("refundId")
	s, ok := a.refunds[id]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"refundId": id, "status": status{Value: s}})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"errorCode": "NOT_FOUND", "description": "no such resource"})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
