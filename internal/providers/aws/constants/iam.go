package constants

// DefaultCrossAccountRoleName is the role assumed in member accounts to read ECS task state.
const DefaultCrossAccountRoleName = "ecs-api-access-cross-account-role"

// DefaultRoleSessionName identifies the notifier's sessions in CloudTrail.
const DefaultRoleSessionName = "ecs-state-check"

// DefaultTargetRegion is the region of the ECS clusters in member accounts.
const DefaultTargetRegion = "eu-central-1"

// IAMService is the service segment of IAM role ARNs.
const IAMService = "iam"

// RoleResourcePrefix is the resource prefix of IAM role ARNs.
const RoleResourcePrefix = "role/"

// DefaultPartition is used when the caller ARN cannot be parsed for its partition.
const DefaultPartition = "aws"
