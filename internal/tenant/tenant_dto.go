package tenant

type UpdateSettingsRequest struct {
	Region    string `json:"region" binding:"required"`
	State     string `json:"state"`
	PolicyKey string `json:"policy_key" binding:"required"`
	WeekStart string `json:"week_start" binding:"required"`
}

type SettingsResponse struct {
	TenantID  string `json:"tenant_id"`
	Region    string `json:"region"`
	State     string `json:"state"`
	PolicyKey string `json:"policy_key"`
	WeekStart string `json:"week_start"`
}
