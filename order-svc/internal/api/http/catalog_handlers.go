package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newRestaurantResponses(restaurants))
}

func (h *Handler) getOwnerRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListOwnerRestaurants(r.Context(), mux.Vars(r)["ownerId"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newRestaurantResponses(restaurants))
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rest, err := h.Catalog.GetRestaurant(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newRestaurantResponse(*rest))
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req restaurantRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rest, err := h.Catalog.CreateRestaurant(r.Context(), identityOf(r), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newRestaurantResponse(*rest))
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req restaurantRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rest, err := h.Catalog.UpdateRestaurant(r.Context(), identityOf(r), id, input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newRestaurantResponse(*rest))
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Catalog.DeleteRestaurant(r.Context(), identityOf(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	items, err := h.Catalog.ListMenuItems(r.Context(), restaurantID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newMenuItemResponses(items))
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.Catalog.GetMenuItem(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newMenuItemResponse(*item))
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req menuItemRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.Catalog.CreateMenuItem(r.Context(), identityOf(r), restaurantID, input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newMenuItemResponse(*item))
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req menuItemRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.Catalog.UpdateMenuItem(r.Context(), identityOf(r), id, input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newMenuItemResponse(*item))
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Catalog.DeleteMenuItem(r.Context(), identityOf(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
