package web

import (
	"net/http"

	"matchday-service/pkg/formation"
)

// handleListFormations 阵型目录。?format=7v7 列出单个赛制，
// 否则列出全部。?mirror=1 时返回镜像后的 y 坐标 (客队朝向渲染用)。
func (s *Server) handleListFormations(w http.ResponseWriter, r *http.Request) {
	mirror := r.URL.Query().Get("mirror") == "1"

	formats := s.catalog.Formats()
	if f := r.URL.Query().Get("format"); f != "" {
		formats = []string{f}
	}

	out := make(map[string][]formation.Formation, len(formats))
	for _, f := range formats {
		formations, err := s.catalog.Formations(f)
		if err != nil {
			writeError(w, err)
			return
		}
		if mirror {
			formations = mirrorFormations(formations)
		}
		out[f] = formations
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"formations": out,
	})
}

// mirrorFormations 展示换算，不触碰目录里的只读数据
func mirrorFormations(in []formation.Formation) []formation.Formation {
	out := make([]formation.Formation, len(in))
	for i, f := range in {
		slots := make([]formation.Slot, len(f.Slots))
		for j, s := range f.Slots {
			s.Y = formation.MirrorY(s.Y)
			slots[j] = s
		}
		out[i] = formation.Formation{Name: f.Name, Slots: slots}
	}
	return out
}
