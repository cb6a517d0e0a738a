package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/services"
)

type AccountHandler struct {
	log            *logger.Logger
	accountService services.AccountService
}

func NewAccountHandler(log *logger.Logger, accountService services.AccountService) *AccountHandler {
	return &AccountHandler{
		log:            log.With("handler", "AccountHandler"),
		accountService: accountService,
	}
}

// DELETE /api/profile
func (ah *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := ah.accountService.DeleteAccount(c.Request.Context()); err != nil {
		RespondServiceError(c, ah.log, err)
		return
	}
	RespondOK(c, gin.H{"msg": "User Deleted"})
}
