package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"lodge/config"
	"lodge/di"
	"lodge/internal/domains/auth/model/dto"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/logger"
	"lodge/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	envAdminPassword = "ADMIN_PASSWORD"
	commandTimeout   = 30 * time.Second
)

// Creates the first superadmin account. The password is read from ADMIN_PASSWORD so it
// never ends up in shell history or process listings.
func main() {
	email := flag.String("email", "", "email of the superadmin account")
	fullName := flag.String("name", "", "display name of the superadmin account")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	req := dto.CreateAdminRequest{
		Email:    *email,
		Password: os.Getenv(envAdminPassword),
		Role:     constant.RoleSuperAdmin,
	}

	if *fullName != constant.Empty {
		req.FullName = fullName
	}

	if err := validator.ValidateStruct(&req); err != nil {
		log.Fatal().Err(err).Msg("Invalid superadmin details, set -email and " + envAdminPassword)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	admin, err := di.InitializeAuth().CreateAdmin(ctx, req)
	if err != nil {
		if failure.Is(err, http.StatusConflict) {
			log.Warn().Str("email", req.Email).Msg("Superadmin already exists, nothing to do")

			return
		}

		log.Fatal().Err(err).Msg("Failed to create superadmin")
	}

	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("Superadmin created")
}
