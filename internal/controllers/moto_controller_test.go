package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"motoyard/internal/models"
	"motoyard/internal/services"
)

// fakeMotoService returns scripted results so the tests can focus on the
// HTTP status mapping.
type fakeMotoService struct {
	getAllResult []models.Moto
	getResult    *models.Moto
	createErr    error
	updateErr    error
	deleteErr    error
}

func (f *fakeMotoService) GetAll(ctx context.Context) ([]models.Moto, error) {
	return f.getAllResult, nil
}

func (f *fakeMotoService) GetByID(ctx context.Context, id int) (*models.Moto, error) {
	return f.getResult, nil
}

func (f *fakeMotoService) Create(ctx context.Context, moto *models.Moto) (*models.Moto, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	moto.ID = 1
	return moto, nil
}

func (f *fakeMotoService) Update(ctx context.Context, id int, moto *models.Moto) error {
	return f.updateErr
}

func (f *fakeMotoService) Delete(ctx context.Context, id int) error {
	return f.deleteErr
}

func motoRouter(svc *fakeMotoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewMotoController(svc)
	r.GET("/motos/:id", ctrl.Get)
	r.POST("/motos", ctrl.Create)
	r.PUT("/motos/:id", ctrl.Update)
	r.DELETE("/motos/:id", ctrl.Delete)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const motoBody = `{"model":"CG 160","brand":"Honda","year":2023,"plate":"ABC1234","status":"S","photo_url":"x"}`

func TestMotoCreateReturns201(t *testing.T) {
	r := motoRouter(&fakeMotoService{})

	w := perform(r, http.MethodPost, "/motos", motoBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("got %d, want 201", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"id":1`) {
		t.Fatalf("response missing generated id: %s", w.Body.String())
	}
}

func TestMotoCreateErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &services.ValidationError{Message: "plate is required"}, http.StatusBadRequest},
		{"conflict", &services.ConflictError{Message: "plate taken"}, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := motoRouter(&fakeMotoService{createErr: tc.err})
			w := perform(r, http.MethodPost, "/motos", motoBody)
			if w.Code != tc.want {
				t.Fatalf("got %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestMotoCreateMalformedBody(t *testing.T) {
	r := motoRouter(&fakeMotoService{})

	w := perform(r, http.MethodPost, "/motos", `{"model":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", w.Code)
	}
}

func TestMotoGetMissingReturns404(t *testing.T) {
	r := motoRouter(&fakeMotoService{getResult: nil})

	w := perform(r, http.MethodGet, "/motos/5", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", w.Code)
	}
}

func TestMotoGetNonNumericIDReturns400(t *testing.T) {
	r := motoRouter(&fakeMotoService{})

	w := perform(r, http.MethodGet, "/motos/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", w.Code)
	}
}

func TestMotoUpdateReturns204(t *testing.T) {
	r := motoRouter(&fakeMotoService{})

	w := perform(r, http.MethodPut, "/motos/1", motoBody)
	if w.Code != http.StatusNoContent {
		t.Fatalf("got %d, want 204", w.Code)
	}
}

func TestMotoUpdateMissingReturns404(t *testing.T) {
	r := motoRouter(&fakeMotoService{updateErr: &services.NotFoundError{Entity: "moto", ID: 1}})

	w := perform(r, http.MethodPut, "/motos/1", motoBody)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", w.Code)
	}
}

func TestMotoDeleteReturns204(t *testing.T) {
	r := motoRouter(&fakeMotoService{})

	w := perform(r, http.MethodDelete, "/motos/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("got %d, want 204", w.Code)
	}
}
