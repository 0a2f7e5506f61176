package response

import "github.com/gofiber/fiber/v3"

// The API speaks the wire format the dashboard expects: successful calls
// return their payload directly, failures return {"msg": ..., "error": ...}.

type ErrorBody struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

const (
	MsgBadRequest          = "bad request"
	MsgUnauthorized        = "unauthorized"
	MsgNotFound            = "not found"
	MsgInternalServerError = "internal server error"
)

func JSON(c fiber.Ctx, status int, payload any) error {
	return c.Status(normalizeStatus(status)).JSON(payload)
}

func Error(c fiber.Ctx, status int, msg string, detail string) error {
	st := normalizeStatus(status)
	if msg == "" {
		msg = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorBody{Msg: msg, Error: detail})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MsgBadRequest
	case fiber.StatusUnauthorized:
		return MsgUnauthorized
	case fiber.StatusNotFound:
		return MsgNotFound
	default:
		if status >= 500 {
			return MsgInternalServerError
		}
		return "error"
	}
}
