package handler

import (
	"net/http"

	"game-forge/internal/service"
	"game-forge/shared/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GameHandler struct {
	service service.GameGenerationService
	logger  *zap.Logger
}

func NewGameHandler(svc service.GameGenerationService, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		service: svc,
		logger:  logger.Named("GameHandler"),
	}
}

func (h *GameHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/archetypes", h.listArchetypes)

		games := api.Group("/games")
		games.POST("/generate", h.generateGame)
		games.POST("/preview", h.previewGame)
		games.POST("/tictactoe/move", h.ticTacToeMove)
	}
}

// @Summary Синтез игры по промпту
// @Description Классифицирует промпт, считает профиль настройки и возвращает полное определение игры
// @Tags games
// @Accept json
// @Produce json
// @Param request body generateGameRequest true "Промпт и необязательные параметры"
// @Success 200 {object} generateGameResponse
// @Failure 400 {object} models.ErrorResponse "Неверное тело запроса"
// @Failure 408 {object} models.ErrorResponse "Запрос отменён"
// @Failure 500 {object} models.ErrorResponse
// @Router /games/generate [post]
func (h *GameHandler) generateGame(c *gin.Context) {
	var req generateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	def, err := h.service.GenerateGame(c.Request.Context(), req.toDomain())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	id := uuid.NewString()
	h.logger.Debug("Game definition issued",
		zap.String("id", id),
		zap.String("archetype", def.Archetype.String()),
		zap.String("request_id", middleware.RequestID(c)),
	)
	c.JSON(http.StatusOK, generateGameResponse{ID: id, Game: def})
}

// @Summary Предпросмотр архетипа и настройки
// @Tags games
// @Accept json
// @Produce json
// @Param request body generateGameRequest true "Промпт и необязательные параметры"
// @Success 200 {object} service.Preview
// @Failure 400 {object} models.ErrorResponse
// @Router /games/preview [post]
func (h *GameHandler) previewGame(c *gin.Context) {
	var req generateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	preview, err := h.service.Preview(c.Request.Context(), req.toDomain())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// @Summary Ход в крестики-нолики
// @Description Применяет ход человека (X) и ответ компьютера (O)
// @Tags games
// @Accept json
// @Produce json
// @Param request body ticTacToeMoveRequest true "Доска и клетка хода"
// @Success 200 {object} service.TicTacToeTurn
// @Failure 400 {object} models.ErrorResponse "Недопустимый ход"
// @Failure 409 {object} models.ErrorResponse "Партия окончена"
// @Router /games/tictactoe/move [post]
func (h *GameHandler) ticTacToeMove(c *gin.Context) {
	var req ticTacToeMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	turn, err := h.service.PlayTicTacToe(req.Board, *req.Row, *req.Col)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, turn)
}

// @Summary Список архетипов
// @Tags games
// @Produce json
// @Success 200 {object} archetypesResponse
// @Router /archetypes [get]
func (h *GameHandler) listArchetypes(c *gin.Context) {
	c.JSON(http.StatusOK, archetypesResponse{Archetypes: h.service.Archetypes()})
}
