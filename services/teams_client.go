package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"matchday-service/pkg/common"
	"matchday-service/pkg/models"
)

// TeamsClient 球队管理服务的只读客户端 (外部协作方)。
// 用于解析球员显示名以及对首发名单做提示性校验。
type TeamsClient struct {
	baseURL string
	client  *http.Client
}

// NewTeamsClient 创建客户端
func NewTeamsClient(baseURL string) *TeamsClient {
	return &TeamsClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetTeam 获取球队及其名册
func (c *TeamsClient) GetTeam(teamID string) (*models.Team, error) {
	url := fmt.Sprintf("%s/teams/%s", c.baseURL, teamID)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call teams API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: team %s", common.ErrNotFound, teamID)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("teams API returned status %d: %s", resp.StatusCode, string(body))
	}

	var team models.Team
	if err := json.NewDecoder(resp.Body).Decode(&team); err != nil {
		return nil, fmt.Errorf("failed to decode team: %w", err)
	}

	return &team, nil
}
