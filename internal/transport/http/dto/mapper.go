package dto

import (
	"fmt"
	"time"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// deadlineLayouts are the timestamp shapes accepted on input, most
// specific first.
var deadlineLayouts = []string{timestampLayout, time.RFC3339, dateLayout}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func formatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timestampLayout)
	return &s
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", entities.ErrInvalidArgument, field)
	}
	return t, nil
}

func parseDatePtr(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := parseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDeadline(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: Deadline must be a date or timestamp", entities.ErrInvalidArgument)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBoolPtr(v *int) *bool {
	if v == nil {
		return nil
	}
	b := *v != 0
	return &b
}

// ToEntity converts the request into a creation record.
func (r CompanyCreateRequest) ToEntity() entities.CompanyCreate {
	return entities.CompanyCreate{
		Name:        r.Name,
		Description: r.CompanyDescription,
		LogoName:    r.CompanyLogoName,
		LogoURL:     r.CompanyLogoURL,
		LogoPath:    r.CompanyLogoPath,
		ContactNo:   r.ContactNo,
		Email:       r.Email,
		Address:     r.Address,
		CreatedBy:   r.CreatedBy,
	}
}

// ToPatch converts the request into a partial update.
func (r CompanyUpdateRequest) ToPatch() entities.CompanyPatch {
	return entities.CompanyPatch{
		Name:        r.Name,
		Description: r.CompanyDescription,
		LogoName:    r.CompanyLogoName,
		LogoURL:     r.CompanyLogoURL,
		LogoPath:    r.CompanyLogoPath,
		ContactNo:   r.ContactNo,
		Email:       r.Email,
		Address:     r.Address,
		IsActive:    intToBoolPtr(r.IsActive),
		UpdatedBy:   r.UpdatedBy,
	}
}

// FromCompany converts a company into its wire form.
func FromCompany(c entities.Company) CompanyResponse {
	created := formatTimestamp(c.CreatedOn)
	return CompanyResponse{
		CompanyID:          c.ID,
		Name:               c.Name,
		IsActive:           boolToInt(c.IsActive),
		CompanyDescription: c.Description,
		CreatedOn:          &created,
		CreatedBy:          c.CreatedBy,
		UpdatedOn:          formatTimestampPtr(c.UpdatedOn),
		UpdatedBy:          c.UpdatedBy,
		DeletedOn:          formatTimestampPtr(c.DeletedOn),
		DeletedBy:          c.DeletedBy,
		CompanyLogoName:    c.LogoName,
		CompanyLogoURL:     c.LogoURL,
		CompanyLogoPath:    c.LogoPath,
		ContactNo:          c.ContactNo,
		Email:              c.Email,
		Address:            c.Address,
	}
}

// FromCompanies converts a slice of companies.
func FromCompanies(cs []entities.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCompany(c))
	}
	return out
}

// FromCompanyPage converts one pagination window of companies.
func FromCompanyPage(p entities.Page[entities.Company]) CompanyPage {
	return CompanyPage{
		Data:       FromCompanies(p.Data),
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

// ToEntity converts the request into a creation record.
func (r UserCreateRequest) ToEntity() entities.UserCreate {
	return entities.UserCreate{
		Email:     r.Email,
		Password:  r.Password,
		RoleID:    r.RoleID,
		CompanyID: r.CompanyID,
		CreatedBy: r.CreatedBy,
	}
}

// ToPatch converts the request into a partial update. The plaintext
// password, when present, is returned separately so the caller can hash it.
func (r UserUpdateRequest) ToPatch() (entities.UserPatch, string) {
	patch := entities.UserPatch{
		Email:     r.Email,
		IsActive:  intToBoolPtr(r.IsActive),
		RoleID:    r.RoleID,
		CompanyID: r.CompanyID,
		UpdatedBy: r.UpdatedBy,
	}
	var password string
	if r.Password != nil {
		password = *r.Password
	}
	return patch, password
}

// FromUser converts a user into its wire form. Password material is
// dropped on the way out.
func FromUser(u entities.User) UserResponse {
	created := formatTimestamp(u.CreatedOn)
	return UserResponse{
		UserID:    u.ID,
		Email:     u.Email,
		IsActive:  boolToInt(u.IsActive),
		RoleID:    u.RoleID,
		CompanyID: u.CompanyID,
		CreatedOn: &created,
		CreatedBy: u.CreatedBy,
		UpdatedOn: formatTimestampPtr(u.UpdatedOn),
		UpdatedBy: u.UpdatedBy,
		DeletedOn: formatTimestampPtr(u.DeletedOn),
		DeletedBy: u.DeletedBy,
	}
}

// FromUsers converts a slice of users.
func FromUsers(us []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUser(u))
	}
	return out
}

// FromUserPage converts one pagination window of users.
func FromUserPage(p entities.Page[entities.User]) UserPage {
	return UserPage{
		Data:       FromUsers(p.Data),
		Total:      p.Total,
		Page:       p.Page,
		PageLimit:  p.Limit,
		TotalPages: p.TotalPages,
	}
}

// ToEntity converts the request into a creation record.
func (r RoleCreateRequest) ToEntity() entities.RoleCreate {
	return entities.RoleCreate{
		Name:      r.Role,
		CompanyID: r.CompanyID,
		CreatedBy: r.CreatedBy,
	}
}

// ToPatch converts the request into a partial update.
func (r RoleUpdateRequest) ToPatch() entities.RolePatch {
	return entities.RolePatch{
		Name:      r.Role,
		CompanyID: r.CompanyID,
		UpdatedBy: r.UpdatedBy,
	}
}

// FromRole converts a role into its wire form.
func FromRole(r entities.Role) RoleResponse {
	created := formatTimestamp(r.CreatedOn)
	return RoleResponse{
		RoleID:      r.ID,
		Role:        r.Name,
		CompanyID:   r.CompanyID,
		CompanyName: r.CompanyName,
		IsActive:    r.IsActive,
		CreatedOn:   &created,
		CreatedBy:   r.CreatedBy,
		UpdatedOn:   formatTimestampPtr(r.UpdatedOn),
		UpdatedBy:   r.UpdatedBy,
		DeletedOn:   formatTimestampPtr(r.DeletedOn),
		DeletedBy:   r.DeletedBy,
	}
}

// FromRoles converts a slice of roles.
func FromRoles(rs []entities.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRole(r))
	}
	return out
}

// FromRolePage converts one pagination window of roles.
func FromRolePage(p entities.Page[entities.Role]) RolePage {
	return RolePage{
		Data:       FromRoles(p.Data),
		Total:      p.Total,
		Page:       p.Page,
		PageLimit:  p.Limit,
		TotalPages: p.TotalPages,
	}
}

// ToEntity converts the request into a creation record. The raw
// EmployeeImage data URL is handled by the caller before insert.
func (r EmployeeCreateRequest) ToEntity() entities.EmployeeCreate {
	return entities.EmployeeCreate{
		Name:        r.Name,
		RoleID:      r.RoleID,
		Phone:       r.Phone,
		Address:     r.Address,
		Email:       r.Email,
		Description: r.Description,
		CompanyID:   r.CompanyID,
		ImageURL:    r.ImageURL,
		ImagePath:   r.ImagePath,
		CreatedBy:   r.CreatedBy,
	}
}

// ToPatch converts the request into a partial update.
func (r EmployeeUpdateRequest) ToPatch() entities.EmployeePatch {
	return entities.EmployeePatch{
		Name:        r.Name,
		RoleID:      r.RoleID,
		Phone:       r.Phone,
		Address:     r.Address,
		Email:       r.Email,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		ImagePath:   r.ImagePath,
		UpdatedBy:   r.UpdatedBy,
	}
}

// FromEmployee converts an employee into its wire form.
func FromEmployee(e entities.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpID:       e.ID,
		Name:        e.Name,
		RoleID:      e.RoleID,
		Phone:       e.Phone,
		Address:     e.Address,
		Email:       e.Email,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		ImagePath:   e.ImagePath,
		CompanyID:   e.CompanyID,
		CreatedBy:   e.CreatedBy,
		UpdatedBy:   e.UpdatedBy,
		IsActive:    e.IsActive,
	}
}

// FromEmployees converts a slice of employees.
func FromEmployees(es []entities.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEmployee(e))
	}
	return out
}

// FromEmployeePage converts one pagination window of employees.
func FromEmployeePage(p entities.Page[entities.Employee]) EmployeePage {
	return EmployeePage{
		Data:       FromEmployees(p.Data),
		Total:      p.Total,
		Page:       p.Page,
		PageLimit:  p.Limit,
		TotalPages: p.TotalPages,
	}
}

// ToEntity converts the request into a creation record.
func (r ProjectCreateRequest) ToEntity() (entities.ProjectCreate, error) {
	start, err := parseDate("StartDate", r.StartDate)
	if err != nil {
		return entities.ProjectCreate{}, err
	}
	end, err := parseDate("EndDate", r.EndDate)
	if err != nil {
		return entities.ProjectCreate{}, err
	}
	return entities.ProjectCreate{
		Name:        r.Name,
		StartDate:   start,
		EndDate:     end,
		ManagerID:   r.ProjectManager,
		Priority:    r.Priority,
		Status:      r.Status,
		CompanyID:   r.CompanyID,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
	}, nil
}

// ToPatch converts the request into a partial update.
func (r ProjectUpdateRequest) ToPatch() (entities.ProjectPatch, error) {
	start, err := parseDatePtr("StartDate", r.StartDate)
	if err != nil {
		return entities.ProjectPatch{}, err
	}
	end, err := parseDatePtr("EndDate", r.EndDate)
	if err != nil {
		return entities.ProjectPatch{}, err
	}
	return entities.ProjectPatch{
		Name:        r.Name,
		StartDate:   start,
		EndDate:     end,
		ManagerID:   r.ProjectManager,
		Priority:    r.Priority,
		Status:      r.Status,
		Description: r.Description,
		IsActive:    r.IsActive,
		UpdatedBy:   r.UpdatedBy,
	}, nil
}

// FromProject converts a project into its wire form.
func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:      p.ID,
		Name:           p.Name,
		StartDate:      p.StartDate.Format(dateLayout),
		EndDate:        p.EndDate.Format(dateLayout),
		ProjectManager: p.ManagerID,
		Priority:       p.Priority,
		Status:         p.Status,
		CompanyID:      p.CompanyID,
		Description:    p.Description,
		IsActive:       p.IsActive,
		CreatedBy:      p.CreatedBy,
		UpdatedBy:      p.UpdatedBy,
		DeletedBy:      p.DeletedBy,
		CreatedOn:      formatTimestamp(p.CreatedOn),
		UpdatedOn:      formatTimestampPtr(p.UpdatedOn),
		DeletedOn:      formatTimestampPtr(p.DeletedOn),
	}
}

// FromProjects converts a slice of projects.
func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

// FromProjectPage converts one pagination window of projects.
func FromProjectPage(p entities.Page[entities.Project]) ProjectPage {
	return ProjectPage{
		Data:       FromProjects(p.Data),
		Total:      p.Total,
		Page:       p.Page,
		PageLimit:  p.Limit,
		TotalPages: p.TotalPages,
	}
}

// ToEntity converts the request into a creation record.
func (r TaskCreateRequest) ToEntity() (entities.TaskCreate, error) {
	deadline, err := parseDeadline(r.Deadline)
	if err != nil {
		return entities.TaskCreate{}, err
	}
	return entities.TaskCreate{
		Name:          r.Name,
		ProjectID:     r.ProjectID,
		AssignedTo:    r.AssignedTo,
		DocumentPath:  r.DocumentPath,
		DocumentURL:   r.DocumentURL,
		DocumentName:  r.DocumentName,
		Deadline:      deadline,
		Priority:      r.Priority,
		Status:        r.Status,
		CompanyID:     r.CompanyID,
		Description:   r.Description,
		ExpectedHours: r.ExptedHours,
		CreatedBy:     r.CreatedBy,
	}, nil
}

// ToPatch converts the request into a partial update.
func (r TaskUpdateRequest) ToPatch() (entities.TaskPatch, error) {
	deadline, err := parseDeadline(r.Deadline)
	if err != nil {
		return entities.TaskPatch{}, err
	}
	return entities.TaskPatch{
		Name:          r.Name,
		ProjectID:     r.ProjectID,
		AssignedTo:    r.AssignedTo,
		DocumentPath:  r.DocumentPath,
		DocumentURL:   r.DocumentURL,
		DocumentName:  r.DocumentName,
		Deadline:      deadline,
		Priority:      r.Priority,
		Status:        r.Status,
		CompanyID:     r.CompanyID,
		Description:   r.Description,
		ExpectedHours: r.ExptedHours,
		IsActive:      r.IsActive,
		UpdatedBy:     r.UpdatedBy,
	}, nil
}

// FromTask converts a task into its wire form.
func FromTask(t entities.Task) TaskResponse {
	return TaskResponse{
		TaskID:       t.ID,
		Name:         t.Name,
		ProjectID:    t.ProjectID,
		AssignedTo:   t.AssignedTo,
		DocumentPath: t.DocumentPath,
		DocumentURL:  t.DocumentURL,
		Deadline:     formatTimestampPtr(t.Deadline),
		Priority:     t.Priority,
		Status:       t.Status,
		CreatedOn:    formatTimestamp(t.CreatedOn),
		CreatedBy:    t.CreatedBy,
		UpdatedOn:    formatTimestampPtr(t.UpdatedOn),
		UpdatedBy:    t.UpdatedBy,
		DeletedOn:    formatTimestampPtr(t.DeletedOn),
		DeletedBy:    t.DeletedBy,
		CompanyID:    t.CompanyID,
		Description:  t.Description,
		DocumentName: t.DocumentName,
		IsActive:     t.IsActive,
		ExptedHours:  t.ExpectedHours,
	}
}

// FromTasks converts a slice of tasks.
func FromTasks(ts []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTask(t))
	}
	return out
}

// FromTaskPage converts one pagination window of tasks.
func FromTaskPage(p entities.Page[entities.Task]) TaskPage {
	return TaskPage{
		Data:       FromTasks(p.Data),
		Total:      p.Total,
		Page:       p.Page,
		PageLimit:  p.Limit,
		TotalPages: p.TotalPages,
	}
}

// ToEntity converts the request into a creation record.
func (r LogTimeCreateRequest) ToEntity() (entities.LogTimeCreate, error) {
	date, err := parseDate("Date", r.Date)
	if err != nil {
		return entities.LogTimeCreate{}, err
	}
	return entities.LogTimeCreate{
		EmpID:        r.EmpID,
		TaskID:       r.TaskID,
		Date:         date,
		CompanyID:    r.CompanyID,
		Description:  r.Description,
		MinutesSpent: r.MinutesSpent,
		HoursSpent:   r.HoursSpent,
		CreatedBy:    r.CreatedBy,
	}, nil
}

// ToPatch converts the request into a partial update.
func (r LogTimeUpdateRequest) ToPatch() (entities.LogTimePatch, error) {
	date, err := parseDatePtr("Date", r.Date)
	if err != nil {
		return entities.LogTimePatch{}, err
	}
	return entities.LogTimePatch{
		EmpID:        r.EmpID,
		TaskID:       r.TaskID,
		Date:         date,
		Description:  r.Description,
		MinutesSpent: r.MinutesSpent,
		HoursSpent:   r.HoursSpent,
		UpdatedBy:    r.UpdatedBy,
	}, nil
}

// FromLogTime converts a work log into its wire form.
func FromLogTime(l entities.LogTime) LogTimeResponse {
	created := formatTimestamp(l.CreatedOn)
	return LogTimeResponse{
		LogID:        l.ID,
		EmpID:        l.EmpID,
		TaskID:       l.TaskID,
		Date:         l.Date.Format(dateLayout),
		CompanyID:    l.CompanyID,
		Description:  l.Description,
		MinutesSpent: l.MinutesSpent,
		HoursSpent:   l.HoursSpent,
		CreatedOn:    &created,
		CreatedBy:    l.CreatedBy,
		UpdatedOn:    formatTimestampPtr(l.UpdatedOn),
		UpdatedBy:    l.UpdatedBy,
		IsActive:     l.IsActive,
		DeletedOn:    formatTimestampPtr(l.DeletedOn),
		DeletedBy:    l.DeletedBy,
	}
}

// FromLogTimes converts a slice of work logs.
func FromLogTimes(ls []entities.LogTime) []LogTimeResponse {
	out := make([]LogTimeResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLogTime(l))
	}
	return out
}

// FromLogTimePage converts one pagination window of work logs.
func FromLogTimePage(p entities.Page[entities.LogTime]) LogTimePage {
	return LogTimePage{
		Data:       FromLogTimes(p.Data),
		Total:      p.Total,
		Page:       p.Page,
		PageLimit:  p.Limit,
		TotalPages: p.TotalPages,
	}
}

// ToEntity converts the request into a creation record.
func (r ProjectEmployeeCreateRequest) ToEntity() entities.ProjectEmployeeCreate {
	return entities.ProjectEmployeeCreate{
		EmpID:         r.EmpID,
		ProjectID:     r.ProjectID,
		CompanyID:     r.CompanyID,
		ProjectRoleID: r.ProjectRoleID,
		CreatedBy:     r.CreatedBy,
	}
}

// ToPatch converts the request into a partial update.
func (r ProjectEmployeeUpdateRequest) ToPatch() entities.ProjectEmployeePatch {
	return entities.ProjectEmployeePatch{
		ProjectID:     r.ProjectID,
		CompanyID:     r.CompanyID,
		ProjectRoleID: r.ProjectRoleID,
		UpdatedBy:     r.UpdatedBy,
	}
}

// FromProjectEmployee converts a project assignment into its wire form.
func FromProjectEmployee(pe entities.ProjectEmployee) ProjectEmployeeResponse {
	created := formatTimestamp(pe.CreatedOn)
	return ProjectEmployeeResponse{
		ProjectEmployeeID: pe.ID,
		EmpID:             pe.EmpID,
		ProjectID:         pe.ProjectID,
		CompanyID:         pe.CompanyID,
		ProjectRoleID:     pe.ProjectRoleID,
		CreatedOn:         &created,
		CreatedBy:         pe.CreatedBy,
		UpdatedOn:         formatTimestampPtr(pe.UpdatedOn),
		UpdatedBy:         pe.UpdatedBy,
		IsActive:          pe.IsActive,
		DeletedOn:         formatTimestampPtr(pe.DeletedOn),
		DeletedBy:         pe.DeletedBy,
	}
}

// FromProjectEmployees converts a slice of project assignments.
func FromProjectEmployees(pes []entities.ProjectEmployee) []ProjectEmployeeResponse {
	out := make([]ProjectEmployeeResponse, 0, len(pes))
	for _, pe := range pes {
		out = append(out, FromProjectEmployee(pe))
	}
	return out
}

// ToEntity converts the request into a creation record.
func (r ProjectRoleCreateRequest) ToEntity() entities.ProjectRoleCreate {
	return entities.ProjectRoleCreate{
		Name:      r.Role,
		CompanyID: r.CompanyID,
		CreatedBy: r.CreatedBy,
	}
}

// ToPatch converts the request into a partial update.
func (r ProjectRoleUpdateRequest) ToPatch() entities.ProjectRolePatch {
	return entities.ProjectRolePatch{
		Name:      r.Role,
		CompanyID: r.CompanyID,
		UpdatedBy: r.UpdatedBy,
	}
}

// FromProjectRole converts a project role into its wire form.
func FromProjectRole(pr entities.ProjectRole) ProjectRoleResponse {
	created := formatTimestamp(pr.CreatedOn)
	return ProjectRoleResponse{
		ProjectRoleID: pr.ID,
		Role:          pr.Name,
		CompanyID:     pr.CompanyID,
		CreatedOn:     &created,
		CreatedBy:     pr.CreatedBy,
		UpdatedOn:     formatTimestampPtr(pr.UpdatedOn),
		UpdatedBy:     pr.UpdatedBy,
		IsActive:      pr.IsActive,
		DeletedOn:     formatTimestampPtr(pr.DeletedOn),
		DeletedBy:     pr.DeletedBy,
	}
}

// FromProjectRoles converts a slice of project roles.
func FromProjectRoles(prs []entities.ProjectRole) []ProjectRoleResponse {
	out := make([]ProjectRoleResponse, 0, len(prs))
	for _, pr := range prs {
		out = append(out, FromProjectRole(pr))
	}
	return out
}
