package handlers

import (
	"net/http"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/repositories"
	"rentmart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ItemHandlers handles marketplace listing requests.
type ItemHandlers struct {
	itemRepo repositories.ItemRepository
	images   services.ImageService
}

func NewItemHandlers(itemRepo repositories.ItemRepository, images services.ImageService) *ItemHandlers {
	return &ItemHandlers{
		itemRepo: itemRepo,
		images:   images,
	}
}

// ListItems handles GET /items. An absent or "all" category returns every
// active listing.
func (h *ItemHandlers) ListItems(c echo.Context) error {
	items, err := h.itemRepo.ListActive(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*models.ItemWithOwner{}
	}
	return c.JSON(http.StatusOK, items)
}

// CreateItemRequest is the item creation payload.
type CreateItemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CategoryID  string   `json:"category_id"`
	Price       float64  `json:"price"`
	Period      string   `json:"period"`
	Location    string   `json:"location"`
	Condition   string   `json:"condition"`
	ImageURL    string   `json:"image_url"`
	Features    []string `json:"features"`
	Rules       []string `json:"rules"`
}

// CreateItem handles POST /items for an authenticated owner.
func (h *ItemHandlers) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authorization required")
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Title == "" || req.CategoryID == "" || req.Price == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Title, category_id and price are required")
	}

	if req.Period == "" {
		req.Period = "day"
	}
	if req.Condition == "" {
		req.Condition = "Good"
	}
	if req.Features == nil {
		req.Features = []string{}
	}
	if req.Rules == nil {
		req.Rules = []string{}
	}

	item := &models.Item{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Period:      req.Period,
		Location:    req.Location,
		Condition:   req.Condition,
		ImageURL:    req.ImageURL,
		Features:    req.Features,
		Rules:       req.Rules,
	}
	if err := h.itemRepo.Create(ctx, item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"item_id": item.ID,
	})
}

// UploadImage handles POST /items/image: stores the multipart "image" file
// in object storage and returns the URL to use as a listing's image_url.
func (h *ItemHandlers) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Image file is required")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	url, err := h.images.UploadListingImage(c.Request().Context(), file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"image_url": url,
	})
}
