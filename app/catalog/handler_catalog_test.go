package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dirtbike-shop/storefront/models"
)

// --- Mock Repo ---

type MockProductRepo struct {
	SourceProducts []models.Product
	Err            error

	// Fields to capture call arguments
	lastCalledID uint
}

func (m *MockProductRepo) GetAllProducts() ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.SourceProducts, nil
}

func (m *MockProductRepo) GetByID(id uint) (*models.Product, error) {
	m.lastCalledID = id

	if m.Err != nil {
		return nil, m.Err
	}

	for _, p := range m.SourceProducts {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, models.ErrProductNotFound
}

// --- Helpers ---

func newTestProduct(id uint, name string, category models.Category, price int64, description string) models.Product {
	return models.Product{
		ID:          id,
		Name:        name,
		Price:       decimal.NewFromInt(price),
		Category:    category,
		Description: description,
		Rating:      4.5,
	}
}

// --- Tests ---

func TestHandleGet(t *testing.T) {
	allMockProducts := newTestCatalog()

	testCases := []struct {
		name               string
		url                string
		mockRepoSetup      func() *MockProductRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with default pagination",
			url:  "/catalog",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{
					SourceProducts: allMockProducts,
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 4, resp.Total)
				assert.Len(t, resp.Products, 4)
				assert.Equal(t, "Yamaha YZ450F", resp.Products[0].Name)
			},
		},
		{
			name: "Success with custom pagination",
			url:  "/catalog?offset=1&limit=2",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 4, resp.Total, "total counts all matches, not just the page")
				assert.Len(t, resp.Products, 2)
				assert.Equal(t, "Kawasaki KX250", resp.Products[0].Name)
			},
		},
		{
			name: "Filter by search term",
			url:  "/catalog?search=yz450",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 1, resp.Total)
				assert.Equal(t, "Yamaha YZ450F", resp.Products[0].Name)
			},
		},
		{
			name: "Filter by category and check response",
			url:  "/catalog?category=motocross",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{
					SourceProducts: allMockProducts,
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 2, resp.Total)
				assert.Len(t, resp.Products, 2)
				assert.Equal(t, "Yamaha YZ450F", resp.Products[0].Name)
				assert.Equal(t, "Kawasaki KX250", resp.Products[1].Name)
			},
		},
		{
			name: "Filter by price range",
			url:  "/catalog?price_min=6000&price_max=7500",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 2, resp.Total)
				assert.Equal(t, "Kawasaki KX250", resp.Products[0].Name)
				assert.Equal(t, "Beta RR 430", resp.Products[1].Name)
			},
		},
		{
			name: "Combined filters",
			url:  "/catalog?category=motocross&price_max=7000",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 1, resp.Total)
				assert.Equal(t, "Kawasaki KX250", resp.Products[0].Name)
			},
		},
		{
			name: "Unknown category is ignored",
			url:  "/catalog?category=cruiser",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 4, resp.Total)
			},
		},
		{
			name: "Empty result",
			url:  "/catalog?search=harley",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 0, resp.Total)
				assert.Len(t, resp.Products, 0)
			},
		},
		{
			name: "Repository error",
			url:  "/catalog",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{Err: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "db down")
			},
		},
		{
			name: "Invalid query param values are ignored",
			url:  "/catalog?offset=abc&limit=xyz&price_min=def&price_max=ghi",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 4, resp.Total)
				assert.Len(t, resp.Products, 4)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := tc.mockRepoSetup()
			handler := NewCatalogHandler(mockRepo)
			req := httptest.NewRequest("GET", tc.url, nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGet(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}
