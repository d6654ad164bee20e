package api

import (
	"context"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/CristiGvl/picoArch/internal/settings"
)

// settingRequest is the body accepted when writing a setting
type settingRequest struct {
	Value *string `json:"value"`
}

// System endpoint
func (s *Server) getSystem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), s.requestTimeout)
	defer cancel()

	info, err := s.systemReader.GetInfo(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(info)
}

// settingName returns the :name parameter detached from the request buffer,
// which fiber reuses once the handler returns.
func settingName(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("name"))
}

// Settings endpoints
func (s *Server) getSetting(c *fiber.Ctx) error {
	name := settingName(c)
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "setting name required"})
	}

	return c.JSON(fiber.Map{"name": name, "value": s.settings.Get(name)})
}

func (s *Server) setSetting(c *fiber.Ctx) error {
	name := settingName(c)
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "setting name required"})
	}

	var req settingRequest
	if err := c.BodyParser(&req); err != nil || req.Value == nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.settings.Set(name, *req.Value); err != nil {
		logWriteError(name, err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

func (s *Server) deleteSetting(c *fiber.Ctx) error {
	name := settingName(c)
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "setting name required"})
	}

	if err := s.settings.Delete(name); err != nil {
		logWriteError(name, err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

func logWriteError(name string, err error) {
	entry := log.WithField("setting", name).WithError(err)
	var werr *settings.WriteError
	if errors.As(err, &werr) {
		entry = entry.WithField("op", werr.Op)
	}
	entry.Error("could not write setting")
}
