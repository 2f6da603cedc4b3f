package request

type OverrideStatusRequest struct {
	Axis   string `json:"axis" binding:"required"`
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}
