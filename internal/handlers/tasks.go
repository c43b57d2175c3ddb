package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Archi44444/NeuroSaathi/internal/models"
)

type TasksHandler struct {
	bank *models.TaskBank
}

func NewTasksHandler(bank *models.TaskBank) *TasksHandler {
	return &TasksHandler{bank: bank}
}

// Tasks serves the assessment content (reading passage, word list,
// task parameters) the frontend runs the tests with.
func (h *TasksHandler) Tasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.bank)
}
