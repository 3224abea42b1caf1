// Package rostersdk is a Go client for the roster service.
//
// The service is split into unauthenticated operations on [Client] (register,
// login, health and JWKS) and bearer-authenticated operations on [Session]
// (employees, offices and office assignments):
//
//	c := rostersdk.NewClient("http://localhost:8080")
//	if _, err := c.Register(ctx, "frandelgadillo", "YourPass2024."); err != nil {
//		return err
//	}
//
//	s, err := c.Login(ctx, "frandelgadillo", "YourPass2024.")
//	if err != nil {
//		return err
//	}
//
//	emp, err := s.CreateEmployee(ctx, rostersdk.EmployeeRequest{...})
//	err = s.AssignOffices(ctx, emp.ID, []int64{1, 2})
//
// Non-2xx responses are returned as *[APIError]; use [IsCode] or errors.As to
// branch on the error code.
package rostersdk
