package request

type SubmitRatingRequest struct {
	StoreID string `json:"storeId" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}
