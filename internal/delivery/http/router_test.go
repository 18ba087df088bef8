package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"docrech/config"
	deliveryHttp "docrech/internal/delivery/http"
	"docrech/internal/delivery/http/handler"
	"docrech/internal/delivery/http/middleware"
	"docrech/internal/domain/entity"
	"docrech/internal/repository"
	"docrech/internal/usecase"
	"docrech/pkg/jwt"
	"docrech/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

type testServer struct {
	handler    http.Handler
	cardiology entity.Specialty
	doctor     entity.Doctor
	disease    entity.Disease
	redis      *miniredis.Miniredis
}

func newTestServer(t *testing.T, authSecret string) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&entity.Specialty{}, &entity.Disease{}, &entity.Doctor{}, &entity.Pharmacy{}))

	ts := &testServer{redis: miniredis.RunT(t)}
	ts.cardiology = entity.Specialty{ID: uuid.New(), Name: "Cardiologie", Icon: "heart"}
	dermatology := entity.Specialty{ID: uuid.New(), Name: "Dermatologie", Icon: "sparkles"}
	require.NoError(t, db.Create([]*entity.Specialty{&ts.cardiology, &dermatology}).Error)

	ts.doctor = entity.Doctor{ID: uuid.New(), FirstName: "Said", LastName: "Mohamed", SpecialtyID: ts.cardiology.ID, Hospital: "Hopital El-Maarouf", Address: "Moroni", PhoneNumber: "333 12 34"}
	other := entity.Doctor{ID: uuid.New(), FirstName: "Fatima", LastName: "Youssouf", SpecialtyID: dermatology.ID, Hospital: "Clinique Al Camar", Address: "Moroni", PhoneNumber: "321 00 00"}
	require.NoError(t, db.Create([]*entity.Doctor{&ts.doctor, &other}).Error)

	ts.disease = entity.Disease{ID: uuid.New(), Name: "Eczema", Description: "Inflammation de la peau", SpecialtyID: dermatology.ID}
	require.NoError(t, db.Create(&ts.disease).Error)

	require.NoError(t, db.Create(&[]entity.Pharmacy{
		{ID: uuid.New(), Name: "Pharmacie du Port", Address: "Port de Moroni", PhoneNumber: "773 00 01", Is24h: true},
		{ID: uuid.New(), Name: "Pharmacie Centrale", Address: "Place de France", PhoneNumber: "773 00 02"},
	}).Error)

	redisClient := redis.NewClient(&redis.Options{Addr: ts.redis.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	log, _ := test.NewNullLogger()
	v := validator.NewValidator()

	diseaseRepo := repository.NewDiseaseRepository(db)
	analytics := usecase.NewSearchAnalyticsUsecase(log, repository.NewSearchAnalyticsRepository(redisClient))

	var authMiddleware *middleware.AuthMiddleware
	if authSecret != "" {
		authMiddleware = middleware.NewAuthMiddleware(jwt.NewJWTService(config.AuthConfig{JWTSecret: authSecret}))
	}

	router := deliveryHttp.NewRouter(
		handler.NewCatalogHandler(usecase.NewCatalogUsecase(), analytics, v),
		handler.NewSpecialtyHandler(usecase.NewSpecialtyUsecase(log, repository.NewSpecialtyRepository(db), analytics), v),
		handler.NewDiseaseHandler(usecase.NewDiseaseUsecase(log, diseaseRepo, analytics), v),
		handler.NewDoctorHandler(usecase.NewDoctorUsecase(log, repository.NewDoctorRepository(db), diseaseRepo, analytics, "269"), v),
		handler.NewPharmacyHandler(usecase.NewPharmacyUsecase(log, repository.NewPharmacyRepository(db), analytics), v),
		authMiddleware,
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)
	ts.handler = router.Setup()
	return ts
}

func (ts *testServer) get(t *testing.T, target string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var body envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRouter_Health(t *testing.T) {
	ts := newTestServer(t, testSecret)

	rec, _ := ts.get(t, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestRouter_Categories(t *testing.T) {
	ts := newTestServer(t, "")

	rec, body := ts.get(t, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []map[string]string
	require.NoError(t, json.Unmarshal(body.Data, &categories))
	require.Len(t, categories, 3)
	assert.Equal(t, "Spécialités", categories[0]["title"])
	assert.Equal(t, "/pharmacies", categories[2]["path"])
}

func TestRouter_Specialties(t *testing.T) {
	ts := newTestServer(t, "")

	rec, body := ts.get(t, "/api/v1/specialties?search=CARDIO", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)

	var data struct {
		Specialties []struct {
			Name        string `json:"name"`
			DoctorCount int64  `json:"doctor_count"`
			DoctorsPath string `json:"doctors_path"`
		} `json:"specialties"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Equal(t, 1, data.Total)
	assert.Equal(t, "Cardiologie", data.Specialties[0].Name)
	assert.Equal(t, int64(1), data.Specialties[0].DoctorCount)
	assert.Equal(t, "/doctors?specialty="+ts.cardiology.ID.String(), data.Specialties[0].DoctorsPath)
}

func TestRouter_Diseases(t *testing.T) {
	ts := newTestServer(t, "")

	rec, body := ts.get(t, "/api/v1/diseases?search=peau", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Diseases []struct {
			Name          string `json:"name"`
			SpecialtyName string `json:"specialty_name"`
		} `json:"diseases"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Len(t, data.Diseases, 1)
	assert.Equal(t, "Eczema", data.Diseases[0].Name)
	assert.Equal(t, "Dermatologie", data.Diseases[0].SpecialtyName)
}

func TestRouter_Doctors(t *testing.T) {
	ts := newTestServer(t, "")

	type doctorList struct {
		Doctors []struct {
			LastName string `json:"last_name"`
		} `json:"doctors"`
		Total int `json:"total"`
	}

	t.Run("all", func(t *testing.T) {
		rec, body := ts.get(t, "/api/v1/doctors", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data doctorList
		require.NoError(t, json.Unmarshal(body.Data, &data))
		assert.Equal(t, 2, data.Total)
		assert.Equal(t, "Mohamed", data.Doctors[0].LastName)
	})

	t.Run("by specialty", func(t *testing.T) {
		rec, body := ts.get(t, "/api/v1/doctors?specialty="+ts.cardiology.ID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data doctorList
		require.NoError(t, json.Unmarshal(body.Data, &data))
		require.Equal(t, 1, data.Total)
		assert.Equal(t, "Mohamed", data.Doctors[0].LastName)
	})

	t.Run("by disease", func(t *testing.T) {
		rec, body := ts.get(t, "/api/v1/doctors?disease="+ts.disease.ID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data doctorList
		require.NoError(t, json.Unmarshal(body.Data, &data))
		require.Equal(t, 1, data.Total)
		assert.Equal(t, "Youssouf", data.Doctors[0].LastName)
	})

	t.Run("search on hospital", func(t *testing.T) {
		rec, body := ts.get(t, "/api/v1/doctors?search=camar", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data doctorList
		require.NoError(t, json.Unmarshal(body.Data, &data))
		require.Equal(t, 1, data.Total)
		assert.Equal(t, "Youssouf", data.Doctors[0].LastName)
	})

	t.Run("invalid specialty", func(t *testing.T) {
		rec, body := ts.get(t, "/api/v1/doctors?specialty=cardio", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, "specialty must be a valid UUID", body.Error["specialty"])
	})
}

func TestRouter_DoctorDetail(t *testing.T) {
	ts := newTestServer(t, "")

	t.Run("found", func(t *testing.T) {
		rec, body := ts.get(t, "/api/v1/doctors/"+ts.doctor.ID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(body.Data, &data))
		assert.Equal(t, "Said Mohamed", data["full_name"])
		assert.Equal(t, "tel:333 12 34", data["call_uri"])
		assert.Equal(t, "https://wa.me/2693331234", data["whatsapp_url"])
	})

	t.Run("not found", func(t *testing.T) {
		rec, body := ts.get(t, "/api/v1/doctors/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Médecin non trouvé", body.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec, _ := ts.get(t, "/api/v1/doctors/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_Pharmacies(t *testing.T) {
	ts := newTestServer(t, "")

	rec, body := ts.get(t, "/api/v1/pharmacies?search=port", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Pharmacies []struct {
			Name    string `json:"name"`
			Is24h   bool   `json:"is_24h"`
			CallURI string `json:"call_uri"`
		} `json:"pharmacies"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Len(t, data.Pharmacies, 1)
	assert.True(t, data.Pharmacies[0].Is24h)
	assert.Equal(t, "tel:773 00 01", data.Pharmacies[0].CallURI)
}

func TestRouter_PopularSearches(t *testing.T) {
	ts := newTestServer(t, "")

	for _, term := range []string{"cardio", "Cardio", "derma"} {
		rec, _ := ts.get(t, "/api/v1/specialties?search="+term, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, body := ts.get(t, "/api/v1/search/popular?listing=specialties&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Listing string `json:"listing"`
		Terms   []struct {
			Term  string `json:"term"`
			Count int64  `json:"count"`
		} `json:"terms"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Len(t, data.Terms, 1)
	assert.Equal(t, "cardio", data.Terms[0].Term)
	assert.Equal(t, int64(2), data.Terms[0].Count)

	rec, body = ts.get(t, "/api/v1/search/popular?listing=clinics", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body.Error["listing"], "must be one of")

	rec, _ = ts.get(t, "/api/v1/search/popular?listing=doctors&limit=many", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_APIKey(t *testing.T) {
	ts := newTestServer(t, testSecret)

	anonKey, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwt.Claims{Role: jwt.RoleAnon}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	serviceKey, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwt.Claims{Role: jwt.RoleServiceRole}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec, _ := ts.get(t, "/api/v1/pharmacies", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = ts.get(t, "/api/v1/pharmacies", map[string]string{"apikey": serviceKey})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = ts.get(t, "/api/v1/pharmacies", map[string]string{"apikey": anonKey})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.get(t, "/api/v1/pharmacies", map[string]string{"Authorization": "Bearer " + anonKey})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.get(t, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	ts := newTestServer(t, testSecret)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/doctors", nil)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "apikey")
}
