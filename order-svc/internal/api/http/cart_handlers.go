package httpapi

import (
	"net/http"

	"lunchbox-marketplace/order-svc/internal/service"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Profiles.Get(r.Context(), identityOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(*user))
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.Profiles.Update(r.Context(), identityOf(r), service.ProfileInput{
		FullName:           req.FullName,
		PhoneNumber:        req.PhoneNumber,
		DeliveryLocationID: req.DeliveryLocationID,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(*user))
}

// session resolves the cart session for the request and writes the error
// response when there is none.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, bool) {
	key, err := service.SessionKey(identityOf(r), r.Header.Get(CartSessionHeader))
	if err != nil {
		h.fail(w, r, err)
		return "", false
	}
	return key, true
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	key, ok := h.session(w, r)
	if !ok {
		return
	}
	c, err := h.Carts.Get(r.Context(), identityOf(r), key)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	key, ok := h.session(w, r)
	if !ok {
		return
	}
	var req addCartItemRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.Carts.AddItem(r.Context(), identityOf(r), key, req.MenuItemID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := pathID(r, "menuItemId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	key, ok := h.session(w, r)
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.Carts.UpdateQuantity(r.Context(), identityOf(r), key, menuItemID, *req.Quantity)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := pathID(r, "menuItemId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	key, ok := h.session(w, r)
	if !ok {
		return
	}
	c, err := h.Carts.RemoveItem(r.Context(), identityOf(r), key, menuItemID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	key, ok := h.session(w, r)
	if !ok {
		return
	}
	c, err := h.Carts.Clear(r.Context(), identityOf(r), key)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}
