package types

import "github.com/go-playground/validator/v10"

// GenerateRequest is the body of POST /v1/generate.
type GenerateRequest struct {
	Shape string `json:"shape" validate:"required,oneof=summary resources study_guide quiz notes insights"`
	Topic string `json:"topic,omitempty" validate:"max=200"`
	Text  string `json:"text" validate:"required,min=1"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerateResponse is the response for a single-shape generation.
type GenerateResponse struct {
	Shape    Shape  `json:"shape"`
	Topic    string `json:"topic"`
	Provider string `json:"provider"`
	Fallback bool   `json:"fallback"`
	Content  string `json:"content"`
}

// KitRequest is the body of POST /v1/kits.
type KitRequest struct {
	Topic string `json:"topic,omitempty" validate:"max=200"`
	Text  string `json:"text" validate:"required,min=1"`
}

// Validate validates the KitRequest using the validator.
func (r *KitRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
