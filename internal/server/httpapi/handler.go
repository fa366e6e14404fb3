package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dpetrovs/registro/internal/common"
	"github.com/dpetrovs/registro/internal/server/models"
)

var validate = validator.New()

// createUserRequest is the POST /users body. Age is a pointer so a literal
// 0 counts as present; only a genuinely absent field fails "required".
type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Age   *int   `json:"age" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// createUserResponse is the created record plus a confirmation message.
type createUserResponse struct {
	models.User
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleListUsers(c *fiber.Ctx) error {
	result, err := s.users.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to load users"})
	}

	if result == nil {
		result = []models.User{}
	}
	return c.JSON(result)
}

func (s *Server) handleCreateUser(c *fiber.Ctx) error {
	req := new(createUserRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: common.ErrValidation.Error()})
	}

	created, err := s.users.Create(c.UserContext(), req.Name, *req.Age, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: common.ErrValidation.Error()})
		case errors.Is(err, common.ErrDuplicateEmail):
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: common.ErrDuplicateEmail.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to create user"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(createUserResponse{User: *created, Message: "user registered"})
}

func (s *Server) handleDeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid user id"})
	}

	if err := s.users.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: common.ErrNotFound.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to delete user"})
	}

	return c.JSON(messageResponse{Message: "user deleted"})
}
