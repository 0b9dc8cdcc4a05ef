package httpapi

import (
	"net/http"

	"lunchbox-marketplace/order-svc/internal/domain"
)

func (h *Handler) getCheckoutTotals(w http.ResponseWriter, r *http.Request) {
	key, ok := h.session(w, r)
	if !ok {
		return
	}
	totals, err := h.Checkout.Totals(r.Context(), identityOf(r), key)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *Handler) validateCheckout(w http.ResponseWriter, r *http.Request) {
	key, ok := h.session(w, r)
	if !ok {
		return
	}
	var req checkoutRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	result, err := h.Checkout.Validate(r.Context(), identityOf(r), key, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	key, ok := h.session(w, r)
	if !ok {
		return
	}
	var req checkoutRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	result, err := h.Checkout.CreatePaymentIntent(r.Context(), identityOf(r), key, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, paymentIntentResponse{
		PaymentIntentID: result.ID,
		ClientSecret:    result.ClientSecret,
		Amount:          money(result.Amount),
		Currency:        result.Currency,
		Totals:          result.Totals,
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	key, ok := h.session(w, r)
	if !ok {
		return
	}
	var req placeOrderRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	order, created, err := h.Checkout.PlaceOrder(r.Context(), identityOf(r), key, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	writeJSON(w, status, newOrderResponse(*order))
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context(), identityOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderResponses(orders))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	order, err := h.Orders.Get(r.Context(), identityOf(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderResponse(*order))
}

func (h *Handler) getOrderItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	items, err := h.Orders.Items(r.Context(), identityOf(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderItemResponses(items))
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	png, err := h.Orders.QRCode(r.Context(), identityOf(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req statusRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), identityOf(r), id, domain.OrderStatus(req.Status))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderResponse(*order))
}

func (h *Handler) bulkUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	updated, err := h.Orders.BulkUpdateStatus(r.Context(), identityOf(r), req.OrderIDs, domain.OrderStatus(req.Status))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}
