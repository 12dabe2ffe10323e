package job

import (
	"fmt"
	"time"

	vo "repairbay/internal/domain/job/valueobjects"
)

// Job is a unit of repair work. A job starts life as a reservation: a row
// holding nothing but an identifier, a status, and a start timestamp. The
// booking form later fills it in through Finalize. A job whose customer was
// purged keeps its row with the customer reference cleared.
type Job struct {
	id             uint
	customerID     *uint
	deviceType     string
	deviceModel    string
	issue          string
	devicePassword *string
	dataRetention  bool
	status         vo.Status
	notes          string
	technician     string
	startedAt      time.Time
	endedAt        *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// DeviceDetails carries the customer-supplied fields bound to a job at
// finalization time.
type DeviceDetails struct {
	DeviceType     string
	DeviceModel    string
	Issue          string
	DevicePassword *string
	DataRetention  bool
}

// NewReservation creates an empty job holding only a status and a start
// timestamp. The identifier is assigned by the store on save. Callers must
// treat the resulting row as transient until it is finalized; the retention
// sweep reclaims abandoned reservations along with their customers.
func NewReservation(now time.Time) *Job {
	return &Job{
		status:    vo.StatusInProgress,
		startedAt: now,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructJob(
	id uint,
	customerID *uint,
	deviceType string,
	deviceModel string,
	issue string,
	devicePassword *string,
	dataRetention bool,
	status vo.Status,
	notes string,
	technician string,
	startedAt time.Time,
	endedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Job, error) {
	if id == 0 {
		return nil, fmt.Errorf("job ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Job{
		id:             id,
		customerID:     customerID,
		deviceType:     deviceType,
		deviceModel:    deviceModel,
		issue:          issue,
		devicePassword: devicePassword,
		dataRetention:  dataRetention,
		status:         status,
		notes:          notes,
		technician:     technician,
		startedAt:      startedAt,
		endedAt:        endedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// Finalize binds a resolved customer and the full submission detail to the
// job. The start timestamp is reset to the finalization time: the clock for
// retention purposes starts when the customer actually hands the device over,
// not when the form was opened.
func (j *Job) Finalize(customerID uint, details DeviceDetails, now time.Time) error {
	if customerID == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	if details.Issue == "" {
		return fmt.Errorf("issue description is required")
	}

	j.customerID = &customerID
	j.deviceType = details.DeviceType
	j.deviceModel = details.DeviceModel
	j.issue = details.Issue
	j.devicePassword = details.DevicePassword
	j.dataRetention = details.DataRetention
	j.status = vo.StatusInProgress
	j.startedAt = now
	j.updatedAt = now
	return nil
}

// SetStatus records a technician status change. Closed statuses stamp the end
// time; moving back to an open status clears it.
func (j *Job) SetStatus(status vo.Status, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}

	j.status = status
	if status.IsClosed() {
		j.endedAt = &now
	} else {
		j.endedAt = nil
	}
	j.updatedAt = now
	return nil
}

func (j *Job) SetNotes(notes string, now time.Time) {
	j.notes = notes
	j.updatedAt = now
}

func (j *Job) AssignTechnician(technician string, now time.Time) {
	j.technician = technician
	j.updatedAt = now
}

// ClearDevicePassword scrubs the stored device password. The password must
// never outlive the customer relationship.
func (j *Job) ClearDevicePassword(now time.Time) {
	j.devicePassword = nil
	j.updatedAt = now
}

// IsReserved reports whether the job is still an unfinalized reservation.
func (j *Job) IsReserved() bool {
	return j.customerID == nil && j.issue == ""
}

func (j *Job) SetID(id uint) error {
	if j.id != 0 {
		return fmt.Errorf("job ID already set")
	}
	if id == 0 {
		return fmt.Errorf("job ID cannot be zero")
	}
	j.id = id
	return nil
}

func (j *Job) ID() uint                 { return j.id }
func (j *Job) CustomerID() *uint        { return j.customerID }
func (j *Job) DeviceType() string       { return j.deviceType }
func (j *Job) DeviceModel() string      { return j.deviceModel }
func (j *Job) Issue() string            { return j.issue }
func (j *Job) DevicePassword() *string  { return j.devicePassword }
func (j *Job) DataRetention() bool      { return j.dataRetention }
func (j *Job) Status() vo.Status        { return j.status }
func (j *Job) Notes() string            { return j.notes }
func (j *Job) Technician() string       { return j.technician }
func (j *Job) StartedAt() time.Time     { return j.startedAt }
func (j *Job) EndedAt() *time.Time      { return j.endedAt }
func (j *Job) CreatedAt() time.Time     { return j.createdAt }
func (j *Job) UpdatedAt() time.Time     { return j.updatedAt }
