package handlers

import (
	"context"
	"net/http"
	"time"

	"aqualog/internal/models"
	"aqualog/internal/service"
	"aqualog/internal/waterquality"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTanks struct {
	createResp models.Tank
	createErr  error
	getResp    models.Tank
	getErr     error
	listResp   []models.Tank
	listErr    error
	rangesResp []models.SafeRangeOverride
	rangesErr  error

	updateVolumeErr  error
	setRangeErr      error
	deleteRangeErr   error
	setScheduleErr   error
	clearScheduleErr error

	lastCreate      service.TankParams
	lastVolume      float64
	lastSetRange    models.SafeRangeOverride
	lastDeleteParam string
	lastSchedule    waterquality.Co2Schedule
	clearCalls      int
}

func (m *mockTanks) Create(ctx context.Context, p service.TankParams) (models.Tank, error) {
	m.lastCreate = p
	return m.createResp, m.createErr
}
func (m *mockTanks) Get(ctx context.Context, id int64) (models.Tank, error) {
	return m.getResp, m.getErr
}
func (m *mockTanks) List(ctx context.Context) ([]models.Tank, error) {
	return m.listResp, m.listErr
}
func (m *mockTanks) UpdateVolume(ctx context.Context, id int64, volumeL float64) error {
	m.lastVolume = volumeL
	return m.updateVolumeErr
}
func (m *mockTanks) SetRange(ctx context.Context, o models.SafeRangeOverride) error {
	m.lastSetRange = o
	return m.setRangeErr
}
func (m *mockTanks) Ranges(ctx context.Context, tankID int64) ([]models.SafeRangeOverride, error) {
	return m.rangesResp, m.rangesErr
}
func (m *mockTanks) DeleteRange(ctx context.Context, tankID int64, parameter string) error {
	m.lastDeleteParam = parameter
	return m.deleteRangeErr
}
func (m *mockTanks) SetCo2Schedule(ctx context.Context, tankID int64, s waterquality.Co2Schedule) error {
	m.lastSchedule = s
	return m.setScheduleErr
}
func (m *mockTanks) ClearCo2Schedule(ctx context.Context, tankID int64) error {
	m.clearCalls++
	return m.clearScheduleErr
}

type mockReadings struct {
	recordResp models.WaterTest
	recordErr  error
	listResp   []models.WaterTest
	listErr    error

	lastRecord models.WaterTest
	lastFrom   time.Time
	lastTo     time.Time
}

func (m *mockReadings) Record(ctx context.Context, wt models.WaterTest) (models.WaterTest, error) {
	m.lastRecord = wt
	return m.recordResp, m.recordErr
}
func (m *mockReadings) List(ctx context.Context, tankID int64, from, to time.Time) ([]models.WaterTest, error) {
	m.lastFrom = from
	m.lastTo = to
	return m.listResp, m.listErr
}

type mockEvaluation struct {
	latestResp service.EvaluationReport
	latestErr  error
	testResp   []waterquality.Verdict
	testErr    error

	latestCalls int
	lastTankID  int64
}

func (m *mockEvaluation) EvaluateLatest(ctx context.Context, tankID int64) (service.EvaluationReport, error) {
	m.latestCalls++
	m.lastTankID = tankID
	return m.latestResp, m.latestErr
}
func (m *mockEvaluation) EvaluateTest(ctx context.Context, wt models.WaterTest) ([]waterquality.Verdict, error) {
	return m.testResp, m.testErr
}

type mockDosing struct {
	recommendResp waterquality.DoseRecommendation
	recommendErr  error
	percentResp   float64
	litresResp    float64
	gallonsResp   float64
	volumeErr     error

	lastDoseReq waterquality.DoseRequest
}

func (m *mockDosing) Recommend(ctx context.Context, tankID int64, req waterquality.DoseRequest) (waterquality.DoseRecommendation, error) {
	m.lastDoseReq = req
	return m.recommendResp, m.recommendErr
}
func (m *mockDosing) WaterChangePercent(current, target float64) float64 {
	return m.percentResp
}
func (m *mockDosing) TankVolume(length, width, height float64, unit waterquality.DimensionUnit) (float64, float64, error) {
	return m.litresResp, m.gallonsResp, m.volumeErr
}

type mockCycle struct {
	resp waterquality.CycleStatus
	err  error
}

func (m *mockCycle) Status(ctx context.Context, tankID int64) (waterquality.CycleStatus, error) {
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
