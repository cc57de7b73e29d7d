package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/OpenCampus/Campus_BContentstore/models"
	"github.com/OpenCampus/Campus_BContentstore/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetCourseFromID(idCourse string) (*models.Course, *res.ErrorRes) {
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}

	var course *models.Course
	cursor := courseModel.GetByID(idObjCourse)
	if err := cursor.Decode(&course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("no existe el curso indicado"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return course, nil
}

// HasCourseAuthorAccess reports whether the user can author the course:
// platform staff, or holder of a staff/instructor role on it.
func HasCourseAuthorAccess(idCourse string, claims *Claims) (bool, error) {
	if claims.IsStaff {
		return true, nil
	}
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return false, err
	}
	idObjUser, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return false, err
	}

	var access *models.CourseAccessRole
	cursor := courseAccessModel.GetOne(bson.D{
		{
			Key:   "user",
			Value: idObjUser,
		},
		{
			Key:   "course",
			Value: idObjCourse,
		},
		{
			Key: "role",
			Value: bson.M{
				"$in": []string{
					models.ROLE_COURSE_STAFF,
					models.ROLE_COURSE_INSTRUCTOR,
				},
			},
		},
	})
	if err := cursor.Decode(&access); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
