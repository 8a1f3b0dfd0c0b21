package formation

// 位置角色标签
const (
	RoleGK  = "Goalkeeper"
	RoleDF  = "Defender"
	RoleWB  = "Wing Back"
	RoleMF  = "Midfielder"
	RoleAM  = "Attacking Midfielder"
	RoleDM  = "Defensive Midfielder"
	RoleWG  = "Winger"
	RoleST  = "Striker"
)

// NewCatalog 构建内置阵型目录。每个赛制注册的第一个阵型即默认阵型。
func NewCatalog() *Catalog {
	c := &Catalog{formats: make(map[string][]Formation)}

	// 5v5
	c.register("5v5", Formation{Name: "2-1-1", Slots: []Slot{
		{ID: "GK", X: 50, Y: 10, Role: RoleGK},
		{ID: "LB", X: 30, Y: 30, Role: RoleDF},
		{ID: "RB", X: 70, Y: 30, Role: RoleDF},
		{ID: "CM", X: 50, Y: 55, Role: RoleMF},
		{ID: "ST", X: 50, Y: 80, Role: RoleST},
	}})
	c.register("5v5", Formation{Name: "1-2-1", Slots: []Slot{
		{ID: "GK", X: 50, Y: 10, Role: RoleGK},
		{ID: "CB", X: 50, Y: 28, Role: RoleDF},
		{ID: "LM", X: 28, Y: 54, Role: RoleMF},
		{ID: "RM", X: 72, Y: 54, Role: RoleMF},
		{ID: "ST", X: 50, Y: 80, Role: RoleST},
	}})

	// 7v7
	c.register("7v7", Formation{Name: "2-3-1", Slots: []Slot{
		{ID: "GK", X: 50, Y: 8, Role: RoleGK},
		{ID: "LB", X: 30, Y: 25, Role: RoleDF},
		{ID: "RB", X: 70, Y: 25, Role: RoleDF},
		{ID: "LM", X: 22, Y: 52, Role: RoleMF},
		{ID: "CM", X: 50, Y: 50, Role: RoleMF},
		{ID: "RM", X: 78, Y: 52, Role: RoleMF},
		{ID: "ST", X: 50, Y: 80, Role: RoleST},
	}})
	c.register("7v7", Formation{Name: "3-2-1", Slots: []Slot{
		{ID: "GK", X: 50, Y: 8, Role: RoleGK},
		{ID: "LB", X: 22, Y: 25, Role: RoleDF},
		{ID: "CB", X: 50, Y: 22, Role: RoleDF},
		{ID: "RB", X: 78, Y: 25, Role: RoleDF},
		{ID: "LCM", X: 38, Y: 52, Role: RoleMF},
		{ID: "RCM", X: 62, Y: 52, Role: RoleMF},
		{ID: "ST", X: 50, Y: 80, Role: RoleST},
	}})
	c.register("7v7", Formation{Name: "2-2-2", Slots: []Slot{
		{ID: "GK", X: 50, Y: 8, Role: RoleGK},
		{ID: "LB", X: 32, Y: 25, Role: RoleDF},
		{ID: "RB", X: 68, Y: 25, Role: RoleDF},
		{ID: "LCM", X: 32, Y: 50, Role: RoleMF},
		{ID: "RCM", X: 68, Y: 50, Role: RoleMF},
		{ID: "LST", X: 38, Y: 78, Role: RoleST},
		{ID: "RST", X: 62, Y: 78, Role: RoleST},
	}})

	// 9v9
	c.register("9v9", Formation{Name: "3-3-2", Slots: []Slot{
		{ID: "GK", X: 50, Y: 8, Role: RoleGK},
		{ID: "LB", X: 22, Y: 26, Role: RoleDF},
		{ID: "CB", X: 50, Y: 22, Role: RoleDF},
		{ID: "RB", X: 78, Y: 26, Role: RoleDF},
		{ID: "LM", X: 25, Y: 52, Role: RoleMF},
		{ID: "CM", X: 50, Y: 50, Role: RoleMF},
		{ID: "RM", X: 75, Y: 52, Role: RoleMF},
		{ID: "LST", X: 38, Y: 80, Role: RoleST},
		{ID: "RST", X: 62, Y: 80, Role: RoleST},
	}})
	c.register("9v9", Formation{Name: "3-2-3", Slots: []Slot{
		{ID: "GK", X: 50, Y: 8, Role: RoleGK},
		{ID: "LB", X: 22, Y: 26, Role: RoleDF},
		{ID: "CB", X: 50, Y: 22, Role: RoleDF},
		{ID: "RB", X: 78, Y: 26, Role: RoleDF},
		{ID: "LCM", X: 38, Y: 48, Role: RoleMF},
		{ID: "RCM", X: 62, Y: 48, Role: RoleMF},
		{ID: "LW", X: 20, Y: 78, Role: RoleWG},
		{ID: "ST", X: 50, Y: 82, Role: RoleST},
		{ID: "RW", X: 80, Y: 78, Role: RoleWG},
	}})
	c.register("9v9", Formation{Name: "2-4-2", Slots: []Slot{
		{ID: "GK", X: 50, Y: 8, Role: RoleGK},
		{ID: "LCB", X: 38, Y: 22, Role: RoleDF},
		{ID: "RCB", X: 62, Y: 22, Role: RoleDF},
		{ID: "LM", X: 12, Y: 50, Role: RoleMF},
		{ID: "LCM", X: 38, Y: 50, Role: RoleMF},
		{ID: "RCM", X: 62, Y: 50, Role: RoleMF},
		{ID: "RM", X: 88, Y: 50, Role: RoleMF},
		{ID: "LST", X: 38, Y: 80, Role: RoleST},
		{ID: "RST", X: 62, Y: 80, Role: RoleST},
	}})

	// 11v11
	c.register("11v11", Formation{Name: "4-4-2", Slots: []Slot{
		{ID: "GK", X: 50, Y: 6, Role: RoleGK},
		{ID: "LB", X: 15, Y: 25, Role: RoleDF},
		{ID: "LCB", X: 38, Y: 22, Role: RoleDF},
		{ID: "RCB", X: 62, Y: 22, Role: RoleDF},
		{ID: "RB", X: 85, Y: 25, Role: RoleDF},
		{ID: "LM", X: 15, Y: 52, Role: RoleMF},
		{ID: "LCM", X: 38, Y: 50, Role: RoleMF},
		{ID: "RCM", X: 62, Y: 50, Role: RoleMF},
		{ID: "RM", X: 85, Y: 52, Role: RoleMF},
		{ID: "LST", X: 38, Y: 80, Role: RoleST},
		{ID: "RST", X: 62, Y: 80, Role: RoleST},
	}})
	c.register("11v11", Formation{Name: "4-3-3", Slots: []Slot{
		{ID: "GK", X: 50, Y: 6, Role: RoleGK},
		{ID: "LB", X: 15, Y: 25, Role: RoleDF},
		{ID: "LCB", X: 38, Y: 22, Role: RoleDF},
		{ID: "RCB", X: 62, Y: 22, Role: RoleDF},
		{ID: "RB", X: 85, Y: 25, Role: RoleDF},
		{ID: "LCM", X: 30, Y: 50, Role: RoleMF},
		{ID: "CM", X: 50, Y: 46, Role: RoleMF},
		{ID: "RCM", X: 70, Y: 50, Role: RoleMF},
		{ID: "LW", X: 18, Y: 78, Role: RoleWG},
		{ID: "ST", X: 50, Y: 84, Role: RoleST},
		{ID: "RW", X: 82, Y: 78, Role: RoleWG},
	}})
	c.register("11v11", Formation{Name: "4-2-3-1", Slots: []Slot{
		{ID: "GK", X: 50, Y: 6, Role: RoleGK},
		{ID: "LB", X: 15, Y: 25, Role: RoleDF},
		{ID: "LCB", X: 38, Y: 22, Role: RoleDF},
		{ID: "RCB", X: 62, Y: 22, Role: RoleDF},
		{ID: "RB", X: 85, Y: 25, Role: RoleDF},
		{ID: "LDM", X: 38, Y: 42, Role: RoleDM},
		{ID: "RDM", X: 62, Y: 42, Role: RoleDM},
		{ID: "LW", X: 18, Y: 62, Role: RoleWG},
		{ID: "CAM", X: 50, Y: 64, Role: RoleAM},
		{ID: "RW", X: 82, Y: 62, Role: RoleWG},
		{ID: "ST", X: 50, Y: 84, Role: RoleST},
	}})
	c.register("11v11", Formation{Name: "3-5-2", Slots: []Slot{
		{ID: "GK", X: 50, Y: 6, Role: RoleGK},
		{ID: "LCB", X: 28, Y: 22, Role: RoleDF},
		{ID: "CB", X: 50, Y: 20, Role: RoleDF},
		{ID: "RCB", X: 72, Y: 22, Role: RoleDF},
		{ID: "LWB", X: 10, Y: 45, Role: RoleWB},
		{ID: "LCM", X: 35, Y: 50, Role: RoleMF},
		{ID: "CM", X: 50, Y: 46, Role: RoleMF},
		{ID: "RCM", X: 65, Y: 50, Role: RoleMF},
		{ID: "RWB", X: 90, Y: 45, Role: RoleWB},
		{ID: "LST", X: 40, Y: 80, Role: RoleST},
		{ID: "RST", X: 60, Y: 80, Role: RoleST},
	}})
	c.register("11v11", Formation{Name: "5-3-2", Slots: []Slot{
		{ID: "GK", X: 50, Y: 6, Role: RoleGK},
		{ID: "LWB", X: 10, Y: 28, Role: RoleWB},
		{ID: "LCB", X: 30, Y: 20, Role: RoleDF},
		{ID: "CB", X: 50, Y: 18, Role: RoleDF},
		{ID: "RCB", X: 70, Y: 20, Role: RoleDF},
		{ID: "RWB", X: 90, Y: 28, Role: RoleWB},
		{ID: "LCM", X: 32, Y: 50, Role: RoleMF},
		{ID: "CM", X: 50, Y: 48, Role: RoleMF},
		{ID: "RCM", X: 68, Y: 50, Role: RoleMF},
		{ID: "LST", X: 40, Y: 78, Role: RoleST},
		{ID: "RST", X: 60, Y: 78, Role: RoleST},
	}})

	return c
}
