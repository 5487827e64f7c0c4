package client

import (
	"context"
	"net/http"

	"coursehub/models"
)

type dashboardResponse struct {
	envelope
	Data *models.DashboardSummary `json:"data"`
}

// GetDashboard fetches the role-specific summary counters.
func (c *Client) GetDashboard(ctx context.Context, userID, role string) (*models.DashboardSummary, error) {
	query := map[string]string{"user_id": userID, "role": role}

	var out dashboardResponse
	if err := c.do(ctx, http.MethodGet, "/dashboard", query, nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = &models.DashboardSummary{}
	}
	return out.Data, nil
}
