package domain

// Request payloads. Ids arrive as hex strings and are parsed by the service.

type NewCafeInput struct {
	Name     string `json:"name" validate:"required"`
	Building string `json:"building" validate:"required"`
}

type NewItemInput struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
	Type  *string  `json:"type"`
}

type NewReviewInput struct {
	CafeID  string `json:"cafeId" validate:"required"`
	ItemID  string `json:"itemId"`
	Rating  *int   `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=200"`
}
