/*
Package boardsdk provides a client SDK for the task board service.

The package is organized around two types:

  - Client: unauthenticated operations and the login flow
  - Session: authenticated operations carrying the bearer token

Create a Client for public endpoints and to log in:

	client := boardsdk.NewClient("http://localhost:8080")

	health, err := client.GetLiveness(ctx)

	session, err := client.Login(ctx, "admin@example.com", "password")

Use the Session for everything else:

	tasks, err := session.ListTasks(ctx, "")

	task, err := session.MoveTask(ctx, task.ID, "Done")

	err = session.Logout(ctx)

The DTO types in this package double as the service's wire format; HTTP
handlers encode them and the SDK decodes them.
*/
package boardsdk
