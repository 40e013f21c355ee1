package mazeapi

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/mazegen-api/api/identity"
	"github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/beka-birhanu/mazegen-api/render"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultRecentLimit = 20

// MazeController manages maze generation and retrieval over HTTP.
type MazeController struct {
	mazes    i.MazeGenerator
	renderer *render.Renderer
}

// NewMazeController initializes a MazeController.
func NewMazeController(mazes i.MazeGenerator, renderer *render.Renderer) (*MazeController, error) {
	if mazes == nil || renderer == nil {
		return nil, errors.New("maze controller requires a generator and a renderer")
	}
	return &MazeController{
		mazes:    mazes,
		renderer: renderer,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.recent)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/image", mc.image)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, ok := ownerFromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	cfg := mazegen.Config{
		Width:     request.Width,
		Height:    request.Height,
		MinLength: request.MinLength,
		Seed:      request.Seed,
	}
	if request.BranchWeights != nil {
		cfg.BranchWeights = *request.BranchWeights
	}

	record, err := mc.mazes.Generate(ctx, ownerID, cfg)
	switch {
	case err == nil:
		ctx.JSON(http.StatusCreated, toMazeResponse(record))
	case errors.Is(err, mazegen.ErrNoQualifyingExit):
		// The parameters are well-formed but this seed produced no exit far
		// enough from the start.
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, mazegen.ErrInvalidDimensions),
		errors.Is(err, mazegen.ErrInvalidWeights),
		errors.Is(err, service.ErrMazeTooLarge):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
	}
}

// byID retrieves a previously generated maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, toMazeResponse(record))
}

// image renders a previously generated maze as PNG.
func (mc *MazeController) image(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}

	renderer := mc.renderer
	if tileParam := ctx.Query("tile"); tileParam != "" {
		tile, err := strconv.Atoi(tileParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "tile must be an integer"})
			return
		}
		renderer = render.NewRenderer(tile)
	}

	var buf bytes.Buffer
	if err := renderer.EncodePNG(&buf, record.Maze()); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering maze"})
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// recent lists the most recently generated mazes.
func (mc *MazeController) recent(ctx *gin.Context) {
	ids, err := mc.mazes.Recent(ctx, defaultRecentLimit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing mazes"})
		return
	}
	ctx.JSON(http.StatusOK, &RecentResponse{IDs: ids})
}

func (mc *MazeController) lookup(ctx *gin.Context) (*domain.MazeRecord, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return nil, false
	}

	record, err := mc.mazes.ByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no maze with that id"})
		return nil, false
	}
	return record, true
}

// ownerFromContext extracts the authenticated user's ID from the claims the
// authorization middleware attached.
func ownerFromContext(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		return uuid.Nil, false
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, false
	}
	idString, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
