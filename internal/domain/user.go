package domain

type User struct {
	Username   string `json:"username"`
	Hash       string `json:"passwordHash"`
	Department string `json:"department"`
}

// Session binds a sid cookie to a logged-in staff member.
type Session struct {
	Username   string `json:"username"`
	Department string `json:"department"`
}

// Permissions gates staff dashboard actions per department.
type Permissions struct {
	ViewOrders      bool
	UpdateOrders    bool
	ViewInventory   bool
	UpdateInventory bool
	ManageRooms     bool
	ManageGuests    bool
	ViewReports     bool
}

var departmentPermissions = map[string]Permissions{
	"front-desk": {
		ViewOrders: true, UpdateOrders: true,
		ViewInventory: true, UpdateInventory: true,
		ManageRooms: true, ManageGuests: true, ViewReports: true,
	},
	"kitchen": {
		ViewOrders: true, UpdateOrders: true,
		ViewInventory: true,
	},
	"housekeeping": {
		ViewInventory: true, ManageRooms: true,
	},
	"management": {
		ViewOrders: true, UpdateOrders: true,
		ViewInventory: true, UpdateInventory: true,
		ManageRooms: true, ManageGuests: true, ViewReports: true,
	},
	"inventory": {
		ViewInventory: true, UpdateInventory: true, ViewReports: true,
	},
}

// PermissionsFor returns the permission set for a department, falling back to
// front-desk for unknown values.
func PermissionsFor(department string) Permissions {
	if p, ok := departmentPermissions[department]; ok {
		return p
	}
	return departmentPermissions["front-desk"]
}
