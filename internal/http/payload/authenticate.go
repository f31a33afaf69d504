package payload

import (
	"prepcheck/internal/core"
	"regexp"

	"github.com/jellydator/validation"
)

var noSurroundingSpace = regexp.MustCompile(`^\S(?:.*\S)?$`)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username,
			validation.Required,
			validation.Length(1, 150),
			validation.Match(noSurroundingSpace).Error("must not start or end with whitespace")),
		validation.Field(&a.Password, validation.Required, validation.Length(1, 72)),
	)
}

func (a AuthRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}
