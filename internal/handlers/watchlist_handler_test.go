package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/artfusion/backend/internal/models"
	"github.com/artfusion/backend/internal/services"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeWatchListStore struct {
	lists map[string]*models.WatchList
}

func newFakeWatchListStore() *fakeWatchListStore {
	return &fakeWatchListStore{lists: make(map[string]*models.WatchList)}
}

func (f *fakeWatchListStore) GetByEmail(_ context.Context, email string) (*models.WatchList, error) {
	return f.lists[email], nil
}

func (f *fakeWatchListStore) AppendItem(_ context.Context, email string, item models.WatchedItem) (*mongo.UpdateResult, error) {
	list, ok := f.lists[email]
	if !ok {
		f.lists[email] = &models.WatchList{Email: email, Items: []models.WatchedItem{item}}
		return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: primitive.NewObjectID()}, nil
	}
	list.Items = append(list.Items, item)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeWatchListStore) PullItem(_ context.Context, email, itemID string) (*mongo.UpdateResult, error) {
	list, ok := f.lists[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	kept := list.Items[:0]
	var removed int64
	for _, item := range list.Items {
		if item.ID == itemID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	list.Items = kept
	result := &mongo.UpdateResult{MatchedCount: 1}
	if removed > 0 {
		result.ModifiedCount = 1
	}
	return result, nil
}

// newWatchListRouter registers the watch list routes the way cmd/server does.
func newWatchListRouter(store services.WatchListStore) *mux.Router {
	handler := NewWatchListHandler(services.NewWatchListService(store))

	router := mux.NewRouter()
	router.HandleFunc("/addList", handler.AddToListHandler).Methods("PUT")
	router.HandleFunc("/viewList", handler.ViewListHandler).Methods("GET")
	router.HandleFunc("/viewItem", handler.RemoveItemHandler).Methods("DELETE")
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddToListHandler(t *testing.T) {
	router := newWatchListRouter(newFakeWatchListStore())
	body := `{"email":"a@x.com","data":[{"_id":"1","title":"Vase"}]}`

	rec := doJSON(t, router, http.MethodPut, "/addList", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result mongo.UpdateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.EqualValues(t, 1, result.UpsertedCount)
}

func TestAddToListHandlerDuplicateMarker(t *testing.T) {
	router := newWatchListRouter(newFakeWatchListStore())
	body := `{"email":"a@x.com","data":[{"_id":"1","title":"Vase"}]}`

	rec := doJSON(t, router, http.MethodPut, "/addList", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/addList", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "duplicateFound", resp["found"])
}

func TestAddToListHandlerRejectsMissingFields(t *testing.T) {
	router := newWatchListRouter(newFakeWatchListStore())

	rec := doJSON(t, router, http.MethodPut, "/addList", `{"data":[{"_id":"1"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/addList", `{"email":"a@x.com","data":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/addList", `{"email":"a@x.com","data":[{"title":"no id"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/addList", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddToListHandlerUsesOnlyFirstItem(t *testing.T) {
	store := newFakeWatchListStore()
	router := newWatchListRouter(store)
	body := `{"email":"a@x.com","data":[{"_id":"1","title":"Vase"},{"_id":"2","title":"Bowl"}]}`

	rec := doJSON(t, router, http.MethodPut, "/addList", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.lists["a@x.com"].Items, 1)
	assert.Equal(t, "1", store.lists["a@x.com"].Items[0].ID)
}

func TestViewListHandler(t *testing.T) {
	router := newWatchListRouter(newFakeWatchListStore())

	body := `{"email":"a@x.com","data":[{"_id":"1","title":"Vase","price":42.5}]}`
	rec := doJSON(t, router, http.MethodPut, "/addList", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/viewList?email=a@x.com", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.WatchedItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Vase", items[0].Title)
	assert.Equal(t, 42.5, items[0].Price)
}

func TestViewListHandlerEmptyForUnknownEmail(t *testing.T) {
	router := newWatchListRouter(newFakeWatchListStore())

	rec := doJSON(t, router, http.MethodGet, "/viewList?email=nobody@x.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestViewListHandlerRequiresEmail(t *testing.T) {
	router := newWatchListRouter(newFakeWatchListStore())

	rec := doJSON(t, router, http.MethodGet, "/viewList", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveItemHandler(t *testing.T) {
	router := newWatchListRouter(newFakeWatchListStore())

	rec := doJSON(t, router, http.MethodPut, "/addList", `{"email":"a@x.com","data":[{"_id":"1","title":"Vase"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/viewItem", `{"e":"a@x.com","id":"1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Item deleted successfully", resp.Message)

	rec = doJSON(t, router, http.MethodGet, "/viewList?email=a@x.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRemoveItemHandlerNotFound(t *testing.T) {
	store := newFakeWatchListStore()
	router := newWatchListRouter(store)

	rec := doJSON(t, router, http.MethodDelete, "/viewItem", `{"e":"nobody@x.com","id":"1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, store.lists, "nobody@x.com")
}

func TestRemoveItemHandlerRequiresFields(t *testing.T) {
	router := newWatchListRouter(newFakeWatchListStore())

	rec := doJSON(t, router, http.MethodDelete, "/viewItem", `{"id":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/viewItem", `{"e":"a@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
